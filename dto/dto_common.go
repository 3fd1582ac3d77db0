package dto

import "time"

// ===== Error Response =====
type ErrorResponse struct {
	Message string `json:"message" example:"invalid body"`
}

// ===== Plain message =====
type MessageResponse struct {
	Msg string `json:"msg" example:"Post updated!"`
}

// Timestamps go out as "YYYY-MM-DD HH:MM:SS" in UTC, second precision,
// no zone suffix.
const timestampLayout = "2006-01-02 15:04:05"

func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
