// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Syllabus is the header of a course syllabus ("sílabo").
type Syllabus struct {
	ID          int64     `json:"id"`
	CursoCodigo string    `json:"cursoCodigo"`
	CursoNombre string    `json:"cursoNombre"`
	Periodo     string    `json:"periodo"`
	Estado      string    `json:"estado"`
	DocenteID   *int64    `json:"docenteId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Aporte tipos accepted by the API.
const (
	AporteIntroductorio = "introductorio"
	AporteIntermedio    = "intermedio"
	AporteAvanzado      = "avanzado"
)

// Aporte is the contribution of a syllabus to one program learning outcome.
type Aporte struct {
	ID                           int64     `json:"id"`
	SyllabusID                   int64     `json:"syllabusId"`
	ResultadoProgramaCodigo      string    `json:"resultadoProgramaCodigo"`
	ResultadoProgramaDescripcion string    `json:"resultadoProgramaDescripcion"`
	TipoAporte                   string    `json:"tipoAporte"`
	CreatedAt                    time.Time `json:"createdAt"`
}

// CreateAporteRequest is the body of POST /syllabus/{id}/aporte.
type CreateAporteRequest struct {
	ResultadoProgramaCodigo      string `json:"resultadoProgramaCodigo" validate:"required,notblank,max=20"`
	ResultadoProgramaDescripcion string `json:"resultadoProgramaDescripcion" validate:"omitempty,max=500"`
	TipoAporte                   string `json:"tipoAporte" validate:"required,oneof=introductorio intermedio avanzado"`
}
