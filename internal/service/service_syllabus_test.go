package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/mock"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/internal/validators"
	"github.com/MKhiriev/silabos-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyllabusSvc(t *testing.T) (SyllabusService, *mock.MockSyllabusRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyllabusRepository(ctrl)

	svc := NewSyllabusValidationService(validators.NewStructValidator()).
		Wrap(NewSyllabusService(repo, logger.Nop()))

	return svc, repo
}

func TestSyllabusService_CreateAporte_Success(t *testing.T) {
	svc, repo := newTestSyllabusSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetSyllabus(ctx, int64(5)).Return(models.Syllabus{ID: 5}, nil),
		repo.EXPECT().CreateAporte(ctx, models.Aporte{
			SyllabusID:                   5,
			ResultadoProgramaCodigo:      "RP1",
			ResultadoProgramaDescripcion: "Diseña soluciones",
			TipoAporte:                   models.AporteIntermedio,
		}).Return(models.Aporte{ID: 10, SyllabusID: 5, ResultadoProgramaCodigo: "RP1"}, nil),
	)

	got, err := svc.CreateAporte(ctx, 5, models.CreateAporteRequest{
		ResultadoProgramaCodigo:      " RP1 ",
		ResultadoProgramaDescripcion: "Diseña soluciones",
		TipoAporte:                   models.AporteIntermedio,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
}

func TestSyllabusService_CreateAporte_InvalidRequestNeverReachesStorage(t *testing.T) {
	// no expectations: any repository call fails the test
	svc, _ := newTestSyllabusSvc(t)

	_, err := svc.CreateAporte(context.Background(), 5, models.CreateAporteRequest{
		TipoAporte: models.AporteAvanzado,
	})
	require.ErrorIs(t, err, validators.ErrInvalidRequest)

	var fieldErrors validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "resultadoProgramaCodigo", fieldErrors[0].Field)
}

func TestSyllabusService_CreateAporte_UnknownSyllabus(t *testing.T) {
	svc, repo := newTestSyllabusSvc(t)

	repo.EXPECT().GetSyllabus(gomock.Any(), int64(404)).Return(models.Syllabus{}, store.ErrSyllabusNotFound)

	_, err := svc.CreateAporte(context.Background(), 404, models.CreateAporteRequest{
		ResultadoProgramaCodigo: "RP1",
		TipoAporte:              models.AporteIntroductorio,
	})
	assert.ErrorIs(t, err, store.ErrSyllabusNotFound)
}

func TestSyllabusService_ListAportes(t *testing.T) {
	svc, repo := newTestSyllabusSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetSyllabus(ctx, int64(5)).Return(models.Syllabus{ID: 5}, nil)
	repo.EXPECT().ListAportes(ctx, int64(5)).Return([]models.Aporte{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.ListAportes(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	repo.EXPECT().GetSyllabus(ctx, int64(6)).Return(models.Syllabus{}, store.ErrSyllabusNotFound)

	_, err = svc.ListAportes(ctx, 6)
	assert.ErrorIs(t, err, store.ErrSyllabusNotFound)
}

func TestSyllabusService_GetSyllabus_InvalidID(t *testing.T) {
	svc, _ := newTestSyllabusSvc(t)

	_, err := svc.GetSyllabus(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidID)
}
