// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/silabos-admin/models"
)

// WriteJSON marshals data and writes it with the given status code and a
// JSON content type. When marshaling fails nothing but a 500 is written and
// the wrapped marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteData writes a successful envelope {"success":true,"data":...}.
func WriteData(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Data: data}, statusCode)
}

// WriteFailure writes a failed envelope {"success":false,"message":...}
// optionally listing invalid fields.
func WriteFailure(w http.ResponseWriter, statusCode int, message string, fieldErrors ...models.FieldError) (int, error) {
	return WriteJSON(w, models.Response{Success: false, Message: message, Errors: fieldErrors}, statusCode)
}
