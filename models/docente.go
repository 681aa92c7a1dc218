// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Docente is an instructor profile.
type Docente struct {
	ID             int64  `json:"id"`
	Codigo         string `json:"codigo"`
	Nombres        string `json:"nombres"`
	Apellidos      string `json:"apellidos"`
	Email          string `json:"email"`
	GradoAcademico string `json:"gradoAcademico"`
	Departamento   string `json:"departamento"`
	Activo         bool   `json:"activo"`
}
