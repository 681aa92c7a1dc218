// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/silabos-admin/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	principalColumns = []string{
		"u.usuario_id",
		"u.external_id",
		"u.tenant_id",
		"u.nombre",
		"u.email",
		"u.activo",
		"c.categoria_id",
		"c.nombre",
	}

	docenteColumns = []string{
		"docente_id",
		"codigo",
		"nombres",
		"apellidos",
		"email",
		"grado_academico",
		"departamento",
		"activo",
	}

	syllabusColumns = []string{
		"silabo_id",
		"curso_codigo",
		"curso_nombre",
		"periodo",
		"estado",
		"docente_id",
		"created_at",
		"updated_at",
	}

	aporteColumns = []string{
		"aporte_id",
		"silabo_id",
		"resultado_programa_codigo",
		"resultado_programa_descripcion",
		"tipo_aporte",
		"created_at",
	}
)

func buildFindPrincipalQuery(externalID, tenantID string) (string, []any, error) {
	query, args, err := psql.
		Select(principalColumns...).
		From("usuario u").
		Join("categoria c ON c.categoria_id = u.categoria_id").
		Where(sq.Eq{"u.external_id": externalID}).
		Where(sq.Eq{"u.tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetDocenteQuery(id int64) (string, []any, error) {
	query, args, err := psql.
		Select(docenteColumns...).
		From("docente").
		Where(sq.Eq{"docente_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDocentesQuery() (string, []any, error) {
	query, args, err := psql.
		Select(docenteColumns...).
		From("docente").
		OrderBy("apellidos", "nombres", "docente_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetSyllabusQuery(id int64) (string, []any, error) {
	query, args, err := psql.
		Select(syllabusColumns...).
		From("silabo").
		Where(sq.Eq{"silabo_id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListAportesQuery(syllabusID int64) (string, []any, error) {
	query, args, err := psql.
		Select(aporteColumns...).
		From("aporte").
		Where(sq.Eq{"silabo_id": syllabusID}).
		OrderBy("aporte_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateAporteQuery(aporte models.Aporte) (string, []any, error) {
	query, args, err := psql.
		Insert("aporte").
		Columns(
			"silabo_id",
			"resultado_programa_codigo",
			"resultado_programa_descripcion",
			"tipo_aporte",
		).
		Values(
			aporte.SyllabusID,
			aporte.ResultadoProgramaCodigo,
			aporte.ResultadoProgramaDescripcion,
			aporte.TipoAporte,
		).
		Suffix("RETURNING aporte_id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
