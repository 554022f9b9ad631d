// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Response is the envelope every JSON endpoint answers with.
//
// Code is a machine-readable error code and is set only on failures;
// Data is omitted when there is nothing to return.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewSuccessResponse builds a successful envelope around data.
func NewSuccessResponse(message string, data any) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewErrorResponse builds a failed envelope carrying only a code and a
// generic message.
func NewErrorResponse(code, message string) Response {
	return Response{
		Success:   false,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UnixMilli(),
	}
}

// MenuItem is one entry of the public menu feed.
type MenuItem struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Menu is the public menu feed, shaped as {"data": [...]}.
type Menu struct {
	Data []MenuItem `json:"data"`
}
