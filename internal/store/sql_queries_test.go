// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/silabos-admin/models"
	"github.com/stretchr/testify/require"
)

func Test_buildFindPrincipalQuery(t *testing.T) {
	query, args, err := buildFindPrincipalQuery("oid-1", "tid-1")
	require.NoError(t, err)

	require.Equal(t, []any{"oid-1", "tid-1"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from usuario u join categoria c on c.categoria_id = u.categoria_id")
	require.Contains(t, q, "u.external_id = $1")
	require.Contains(t, q, "u.tenant_id = $2")
	require.Contains(t, q, "limit 1")
	for _, c := range principalColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildDocenteQueries(t *testing.T) {
	query, args, err := buildGetDocenteQuery(999999)
	require.NoError(t, err)
	require.Equal(t, []any{int64(999999)}, args)
	require.True(t, strings.HasSuffix(query, "FROM docente WHERE docente_id = $1"), query)

	query, args, err = buildListDocentesQuery()
	require.NoError(t, err)
	require.Empty(t, args)
	require.Contains(t, query, "ORDER BY apellidos, nombres, docente_id")
}

func Test_buildSyllabusQueries(t *testing.T) {
	query, args, err := buildGetSyllabusQuery(5)
	require.NoError(t, err)
	require.Equal(t, []any{int64(5)}, args)
	require.Contains(t, query, "FROM silabo WHERE silabo_id = $1")

	query, args, err = buildListAportesQuery(5)
	require.NoError(t, err)
	require.Equal(t, []any{int64(5)}, args)
	require.Contains(t, query, "FROM aporte WHERE silabo_id = $1 ORDER BY aporte_id")
}

func Test_buildCreateAporteQuery(t *testing.T) {
	query, args, err := buildCreateAporteQuery(models.Aporte{
		SyllabusID:              5,
		ResultadoProgramaCodigo: "RP1",
		TipoAporte:              models.AporteAvanzado,
	})
	require.NoError(t, err)

	require.Equal(t, []any{int64(5), "RP1", "", models.AporteAvanzado}, args)
	require.True(t, strings.HasPrefix(query, "INSERT INTO aporte"), query)
	require.Contains(t, query, "VALUES ($1,$2,$3,$4)")
	require.True(t, strings.HasSuffix(query, "RETURNING aporte_id, created_at"), query)
}
