// File path: internal/catalog/data.go
package catalog

// costCodes is the static EV charging installation cost catalog, 95 codes
// across 9 categories.
var costCodes = []CostCode{
	{Code: "CONC-001", Category: CategoryConcrete, Description: "4-inch concrete pad", Unit: "SF", UnitCost: 8.50, MaterialCost: 4.25, LaborCost: 4.25},
	{Code: "CONC-002", Category: CategoryConcrete, Description: "6-inch concrete pad", Unit: "SF", UnitCost: 12.00, MaterialCost: 6.00, LaborCost: 6.00},
	{Code: "CONC-003", Category: CategoryConcrete, Description: "Concrete curb stop", Unit: "EA", UnitCost: 75.00, MaterialCost: 35.00, LaborCost: 40.00},
	{Code: "CONC-004", Category: CategoryConcrete, Description: "Concrete footings", Unit: "CY", UnitCost: 450.00, MaterialCost: 200.00, LaborCost: 250.00},
	{Code: "CONC-005", Category: CategoryConcrete, Description: "Concrete encasement for conduit", Unit: "LF", UnitCost: 18.00, MaterialCost: 8.00, LaborCost: 10.00},
	{Code: "CONC-006", Category: CategoryConcrete, Description: "Bollard concrete base", Unit: "EA", UnitCost: 125.00, MaterialCost: 55.00, LaborCost: 70.00},
	{Code: "CONC-007", Category: CategoryConcrete, Description: "Concrete sealing/caulking", Unit: "LF", UnitCost: 3.50, MaterialCost: 1.50, LaborCost: 2.00},
	{Code: "CONC-008", Category: CategoryConcrete, Description: "Reinforced concrete pad (with rebar)", Unit: "SF", UnitCost: 15.00, MaterialCost: 8.00, LaborCost: 7.00},
	{Code: "CONC-009", Category: CategoryConcrete, Description: "Concrete saw cutting", Unit: "LF", UnitCost: 6.00, MaterialCost: 2.00, LaborCost: 4.00},
	{Code: "CONC-010", Category: CategoryConcrete, Description: "Concrete removal and disposal", Unit: "CY", UnitCost: 85.00, MaterialCost: 0.00, LaborCost: 85.00},
	{Code: "COND-001", Category: CategoryConduit, Description: "1-inch PVC conduit", Unit: "LF", UnitCost: 3.25, MaterialCost: 1.50, LaborCost: 1.75},
	{Code: "COND-002", Category: CategoryConduit, Description: "2-inch PVC conduit", Unit: "LF", UnitCost: 4.50, MaterialCost: 2.25, LaborCost: 2.25},
	{Code: "COND-003", Category: CategoryConduit, Description: "3-inch PVC conduit", Unit: "LF", UnitCost: 6.75, MaterialCost: 3.50, LaborCost: 3.25},
	{Code: "COND-004", Category: CategoryConduit, Description: "4-inch PVC conduit", Unit: "LF", UnitCost: 9.00, MaterialCost: 5.00, LaborCost: 4.00},
	{Code: "COND-005", Category: CategoryConduit, Description: "1-inch rigid metal conduit (RMC)", Unit: "LF", UnitCost: 8.50, MaterialCost: 5.00, LaborCost: 3.50},
	{Code: "COND-006", Category: CategoryConduit, Description: "2-inch rigid metal conduit (RMC)", Unit: "LF", UnitCost: 12.00, MaterialCost: 7.50, LaborCost: 4.50},
	{Code: "COND-007", Category: CategoryConduit, Description: "3-inch rigid metal conduit (RMC)", Unit: "LF", UnitCost: 18.00, MaterialCost: 11.00, LaborCost: 7.00},
	{Code: "COND-008", Category: CategoryConduit, Description: "4-inch rigid metal conduit (RMC)", Unit: "LF", UnitCost: 24.00, MaterialCost: 15.00, LaborCost: 9.00},
	{Code: "COND-009", Category: CategoryConduit, Description: "Conduit fittings and connectors", Unit: "EA", UnitCost: 12.00, MaterialCost: 6.00, LaborCost: 6.00},
	{Code: "COND-010", Category: CategoryConduit, Description: "Conduit elbows (90-degree)", Unit: "EA", UnitCost: 18.00, MaterialCost: 10.00, LaborCost: 8.00},
	{Code: "COND-011", Category: CategoryConduit, Description: "Junction boxes (large)", Unit: "EA", UnitCost: 85.00, MaterialCost: 45.00, LaborCost: 40.00},
	{Code: "COND-012", Category: CategoryConduit, Description: "Pull boxes (NEMA 3R)", Unit: "EA", UnitCost: 150.00, MaterialCost: 85.00, LaborCost: 65.00},
	{Code: "COND-013", Category: CategoryConduit, Description: "Expansion fittings", Unit: "EA", UnitCost: 45.00, MaterialCost: 25.00, LaborCost: 20.00},
	{Code: "COND-014", Category: CategoryConduit, Description: "Conduit supports/hangers", Unit: "EA", UnitCost: 8.00, MaterialCost: 4.00, LaborCost: 4.00},
	{Code: "COND-015", Category: CategoryConduit, Description: "Conduit sealing compound", Unit: "EA", UnitCost: 15.00, MaterialCost: 8.00, LaborCost: 7.00},
	{Code: "WIRE-001", Category: CategoryWire, Description: "#6 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 2.50, MaterialCost: 1.80, LaborCost: 0.70},
	{Code: "WIRE-002", Category: CategoryWire, Description: "#4 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 3.50, MaterialCost: 2.50, LaborCost: 1.00},
	{Code: "WIRE-003", Category: CategoryWire, Description: "#2 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 5.00, MaterialCost: 3.75, LaborCost: 1.25},
	{Code: "WIRE-004", Category: CategoryWire, Description: "#1 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 6.50, MaterialCost: 5.00, LaborCost: 1.50},
	{Code: "WIRE-005", Category: CategoryWire, Description: "1/0 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 8.00, MaterialCost: 6.25, LaborCost: 1.75},
	{Code: "WIRE-006", Category: CategoryWire, Description: "2/0 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 10.00, MaterialCost: 7.85, LaborCost: 2.15},
	{Code: "WIRE-007", Category: CategoryWire, Description: "3/0 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 12.50, MaterialCost: 9.80, LaborCost: 2.70},
	{Code: "WIRE-008", Category: CategoryWire, Description: "4/0 AWG copper wire (THHN/THWN)", Unit: "LF", UnitCost: 15.00, MaterialCost: 11.75, LaborCost: 3.25},
	{Code: "WIRE-009", Category: CategoryWire, Description: "250 kcmil copper wire", Unit: "LF", UnitCost: 18.00, MaterialCost: 14.00, LaborCost: 4.00},
	{Code: "WIRE-010", Category: CategoryWire, Description: "500 kcmil copper wire", Unit: "LF", UnitCost: 32.00, MaterialCost: 26.00, LaborCost: 6.00},
	{Code: "WIRE-011", Category: CategoryWire, Description: "Wire pulling lubricant", Unit: "EA", UnitCost: 25.00, MaterialCost: 18.00, LaborCost: 7.00},
	{Code: "WIRE-012", Category: CategoryWire, Description: "Wire connectors and terminals", Unit: "EA", UnitCost: 8.00, MaterialCost: 5.00, LaborCost: 3.00},
	{Code: "LABOR-001", Category: CategoryLabor, Description: "Licensed electrician (journeyman)", Unit: "HR", UnitCost: 95.00, MaterialCost: 0.00, LaborCost: 95.00},
	{Code: "LABOR-002", Category: CategoryLabor, Description: "Master electrician", Unit: "HR", UnitCost: 125.00, MaterialCost: 0.00, LaborCost: 125.00},
	{Code: "LABOR-003", Category: CategoryLabor, Description: "Electrician apprentice", Unit: "HR", UnitCost: 65.00, MaterialCost: 0.00, LaborCost: 65.00},
	{Code: "LABOR-004", Category: CategoryLabor, Description: "General laborer", Unit: "HR", UnitCost: 45.00, MaterialCost: 0.00, LaborCost: 45.00},
	{Code: "LABOR-005", Category: CategoryLabor, Description: "Equipment operator", Unit: "HR", UnitCost: 75.00, MaterialCost: 0.00, LaborCost: 75.00},
	{Code: "LABOR-006", Category: CategoryLabor, Description: "Foreman/supervisor", Unit: "HR", UnitCost: 110.00, MaterialCost: 0.00, LaborCost: 110.00},
	{Code: "LABOR-007", Category: CategoryLabor, Description: "Concrete finisher", Unit: "HR", UnitCost: 70.00, MaterialCost: 0.00, LaborCost: 70.00},
	{Code: "LABOR-008", Category: CategoryLabor, Description: "Excavation laborer", Unit: "HR", UnitCost: 55.00, MaterialCost: 0.00, LaborCost: 55.00},
	{Code: "LABOR-009", Category: CategoryLabor, Description: "Traffic control personnel", Unit: "HR", UnitCost: 50.00, MaterialCost: 0.00, LaborCost: 50.00},
	{Code: "LABOR-010", Category: CategoryLabor, Description: "Project engineer/PM", Unit: "HR", UnitCost: 150.00, MaterialCost: 0.00, LaborCost: 150.00},
	{Code: "EQUIP-001", Category: CategoryEquipment, Description: "Level 2 charging station (7.2 kW)", Unit: "EA", UnitCost: 2500.00, MaterialCost: 2500.00, LaborCost: 0.00},
	{Code: "EQUIP-002", Category: CategoryEquipment, Description: "Level 2 charging station (19.2 kW)", Unit: "EA", UnitCost: 4500.00, MaterialCost: 4500.00, LaborCost: 0.00},
	{Code: "EQUIP-003", Category: CategoryEquipment, Description: "DC Fast Charger (50 kW)", Unit: "EA", UnitCost: 35000.00, MaterialCost: 35000.00, LaborCost: 0.00},
	{Code: "EQUIP-004", Category: CategoryEquipment, Description: "DC Fast Charger (150 kW)", Unit: "EA", UnitCost: 75000.00, MaterialCost: 75000.00, LaborCost: 0.00},
	{Code: "EQUIP-005", Category: CategoryEquipment, Description: "DC Fast Charger (350 kW)", Unit: "EA", UnitCost: 125000.00, MaterialCost: 125000.00, LaborCost: 0.00},
	{Code: "EQUIP-006", Category: CategoryEquipment, Description: "Electrical service panel (200A)", Unit: "EA", UnitCost: 1200.00, MaterialCost: 800.00, LaborCost: 400.00},
	{Code: "EQUIP-007", Category: CategoryEquipment, Description: "Electrical service panel (400A)", Unit: "EA", UnitCost: 2500.00, MaterialCost: 1800.00, LaborCost: 700.00},
	{Code: "EQUIP-008", Category: CategoryEquipment, Description: "Transformer (75 kVA)", Unit: "EA", UnitCost: 8500.00, MaterialCost: 7500.00, LaborCost: 1000.00},
	{Code: "EQUIP-009", Category: CategoryEquipment, Description: "Transformer (150 kVA)", Unit: "EA", UnitCost: 15000.00, MaterialCost: 13500.00, LaborCost: 1500.00},
	{Code: "EQUIP-010", Category: CategoryEquipment, Description: "Circuit breaker (2-pole, 50A)", Unit: "EA", UnitCost: 125.00, MaterialCost: 85.00, LaborCost: 40.00},
	{Code: "EQUIP-011", Category: CategoryEquipment, Description: "Circuit breaker (3-pole, 100A)", Unit: "EA", UnitCost: 250.00, MaterialCost: 175.00, LaborCost: 75.00},
	{Code: "EQUIP-012", Category: CategoryEquipment, Description: "Surge protection device", Unit: "EA", UnitCost: 450.00, MaterialCost: 350.00, LaborCost: 100.00},
	{Code: "EQUIP-013", Category: CategoryEquipment, Description: "Energy meter (kWh)", Unit: "EA", UnitCost: 650.00, MaterialCost: 500.00, LaborCost: 150.00},
	{Code: "EQUIP-014", Category: CategoryEquipment, Description: "Network gateway/controller", Unit: "EA", UnitCost: 1200.00, MaterialCost: 1000.00, LaborCost: 200.00},
	{Code: "EQUIP-015", Category: CategoryEquipment, Description: "Backup battery system (optional)", Unit: "EA", UnitCost: 5500.00, MaterialCost: 5000.00, LaborCost: 500.00},
	{Code: "SAFE-001", Category: CategorySafety, Description: "Steel bollards (protective)", Unit: "EA", UnitCost: 350.00, MaterialCost: 250.00, LaborCost: 100.00},
	{Code: "SAFE-002", Category: CategorySafety, Description: "Wheel stops", Unit: "EA", UnitCost: 85.00, MaterialCost: 50.00, LaborCost: 35.00},
	{Code: "SAFE-003", Category: CategorySafety, Description: "Safety signage (ADA compliant)", Unit: "EA", UnitCost: 75.00, MaterialCost: 45.00, LaborCost: 30.00},
	{Code: "SAFE-004", Category: CategorySafety, Description: "Pavement markings (striping)", Unit: "LF", UnitCost: 2.50, MaterialCost: 1.25, LaborCost: 1.25},
	{Code: "SAFE-005", Category: CategorySafety, Description: "Security lighting", Unit: "EA", UnitCost: 450.00, MaterialCost: 325.00, LaborCost: 125.00},
	{Code: "SAFE-006", Category: CategorySafety, Description: "Emergency shut-off switch", Unit: "EA", UnitCost: 175.00, MaterialCost: 100.00, LaborCost: 75.00},
	{Code: "SAFE-007", Category: CategorySafety, Description: "Fire extinguisher cabinet", Unit: "EA", UnitCost: 225.00, MaterialCost: 150.00, LaborCost: 75.00},
	{Code: "SAFE-008", Category: CategorySafety, Description: "Safety barrier/fencing", Unit: "LF", UnitCost: 35.00, MaterialCost: 22.00, LaborCost: 13.00},
	{Code: "SITE-001", Category: CategorySite, Description: "Excavation (trenching)", Unit: "LF", UnitCost: 12.00, MaterialCost: 0.00, LaborCost: 12.00},
	{Code: "SITE-002", Category: CategorySite, Description: "Backfill and compaction", Unit: "LF", UnitCost: 8.00, MaterialCost: 2.00, LaborCost: 6.00},
	{Code: "SITE-003", Category: CategorySite, Description: "Rock removal (additional)", Unit: "CY", UnitCost: 150.00, MaterialCost: 0.00, LaborCost: 150.00},
	{Code: "SITE-004", Category: CategorySite, Description: "Site preparation/grading", Unit: "SF", UnitCost: 2.50, MaterialCost: 0.00, LaborCost: 2.50},
	{Code: "SITE-005", Category: CategorySite, Description: "Utility locating service", Unit: "EA", UnitCost: 350.00, MaterialCost: 0.00, LaborCost: 350.00},
	{Code: "SITE-006", Category: CategorySite, Description: "Traffic control setup", Unit: "DAY", UnitCost: 450.00, MaterialCost: 100.00, LaborCost: 350.00},
	{Code: "SITE-007", Category: CategorySite, Description: "Erosion control measures", Unit: "EA", UnitCost: 275.00, MaterialCost: 125.00, LaborCost: 150.00},
	{Code: "SITE-008", Category: CategorySite, Description: "Temporary power setup", Unit: "EA", UnitCost: 500.00, MaterialCost: 200.00, LaborCost: 300.00},
	{Code: "SITE-009", Category: CategorySite, Description: "Site cleanup and disposal", Unit: "LOT", UnitCost: 750.00, MaterialCost: 250.00, LaborCost: 500.00},
	{Code: "SITE-010", Category: CategorySite, Description: "Soil testing and analysis", Unit: "EA", UnitCost: 425.00, MaterialCost: 0.00, LaborCost: 425.00},
	{Code: "REST-001", Category: CategoryRestoration, Description: "Asphalt patching", Unit: "SF", UnitCost: 8.00, MaterialCost: 4.00, LaborCost: 4.00},
	{Code: "REST-002", Category: CategoryRestoration, Description: "Full asphalt restoration", Unit: "SF", UnitCost: 12.00, MaterialCost: 6.50, LaborCost: 5.50},
	{Code: "REST-003", Category: CategoryRestoration, Description: "Landscape restoration (grass/sod)", Unit: "SF", UnitCost: 3.50, MaterialCost: 2.00, LaborCost: 1.50},
	{Code: "REST-004", Category: CategoryRestoration, Description: "Sidewalk repair", Unit: "SF", UnitCost: 15.00, MaterialCost: 8.00, LaborCost: 7.00},
	{Code: "REST-005", Category: CategoryRestoration, Description: "Curb and gutter repair", Unit: "LF", UnitCost: 45.00, MaterialCost: 25.00, LaborCost: 20.00},
	{Code: "REST-006", Category: CategoryRestoration, Description: "Driveway apron restoration", Unit: "SF", UnitCost: 18.00, MaterialCost: 10.00, LaborCost: 8.00},
	{Code: "REST-007", Category: CategoryRestoration, Description: "Gravel/crushed stone restoration", Unit: "SF", UnitCost: 4.50, MaterialCost: 2.50, LaborCost: 2.00},
	{Code: "REST-008", Category: CategoryRestoration, Description: "Pavement sealing", Unit: "SF", UnitCost: 1.50, MaterialCost: 0.75, LaborCost: 0.75},
	{Code: "GRND-001", Category: CategoryGrounding, Description: "Ground rod (8-foot copper)", Unit: "EA", UnitCost: 85.00, MaterialCost: 45.00, LaborCost: 40.00},
	{Code: "GRND-002", Category: CategoryGrounding, Description: "Ground rod (10-foot copper)", Unit: "EA", UnitCost: 110.00, MaterialCost: 60.00, LaborCost: 50.00},
	{Code: "GRND-003", Category: CategoryGrounding, Description: "Ground wire (#6 AWG bare copper)", Unit: "LF", UnitCost: 2.25, MaterialCost: 1.50, LaborCost: 0.75},
	{Code: "GRND-004", Category: CategoryGrounding, Description: "Ground wire (#4 AWG bare copper)", Unit: "LF", UnitCost: 3.00, MaterialCost: 2.00, LaborCost: 1.00},
	{Code: "GRND-005", Category: CategoryGrounding, Description: "Ground clamps and connectors", Unit: "EA", UnitCost: 18.00, MaterialCost: 10.00, LaborCost: 8.00},
	{Code: "GRND-006", Category: CategoryGrounding, Description: "Grounding electrode conductor", Unit: "LF", UnitCost: 4.50, MaterialCost: 3.00, LaborCost: 1.50},
	{Code: "GRND-007", Category: CategoryGrounding, Description: "Ground resistance testing", Unit: "EA", UnitCost: 250.00, MaterialCost: 0.00, LaborCost: 250.00},
}
