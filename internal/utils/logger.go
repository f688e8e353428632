package utils

import (
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogCritical marks conditions that need operator attention, such as a slot
// stuck in a hold state after a failed revert.
func LogCritical(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] CRITICAL action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
