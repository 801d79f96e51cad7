// File path: internal/api/logs_handler.go
package api

import (
	"net/http"

	"github.com/evmaxhq/evmax-catalog/internal/common"
)

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries := append([]common.LogEntry(nil), common.LogEntries()...)
	limit := parseQueryInt(r.URL.Query().Get("limit"), 0)
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   len(entries),
	})
}
