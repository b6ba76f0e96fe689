package tests

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMembresiaFixture() (*stubMembresiaRepo, *stubCorteRepo, service.MembresiaService) {
	repo := newStubMembresiaRepo()
	corteRepo := newStubCorteRepo()
	corte := service.NewCorteService(corteRepo, "")
	return repo, corteRepo, service.NewMembresiaService(repo, corte)
}

func TestCrearMembresiaGeneraCodigoDeSeisDigitos(t *testing.T) {
	repo, _, svc := newMembresiaFixture()

	resp, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:      "Ana Torres",
		Edad:        28,
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), resp.CodigoCliente)
	assert.True(t, resp.Activa)
	assert.True(t, resp.Vigente)

	// vigencia por defecto: 1 mes
	esperado := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	assert.Equal(t, esperado, resp.FechaVencimiento)

	// el alta siempre deja su pago en el historial
	require.Len(t, repo.historial, 1)
	assert.Equal(t, resp.CodigoCliente, repo.historial[0].CodigoCliente)
}

func TestRenovarExtiendeDesdeElVencimientoVigente(t *testing.T) {
	repo, _, svc := newMembresiaFixture()

	resp, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:        "Carlos Medina",
		MontoPagado:   decimal.NewFromFloat(450),
		MesesVigencia: 1,
	})
	require.NoError(t, err)

	renovada, err := svc.RenovarMembresia(context.Background(), resp.CodigoCliente, dto.RenovarMembresiaRequest{
		MontoPagado:   decimal.NewFromFloat(450),
		MesesVigencia: 2,
	})
	require.NoError(t, err)

	// aún vigente: el nuevo periodo arranca donde terminaba el anterior
	esperado := time.Now().AddDate(0, 3, 0).Format("2006-01-02")
	assert.Equal(t, esperado, renovada.FechaVencimiento)
	assert.Len(t, repo.historial, 2)
}

func TestRenovarVencidaParteDeHoy(t *testing.T) {
	repo, _, svc := newMembresiaFixture()

	resp, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:      "Lucía Pérez",
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)

	// forzar vencimiento en el pasado
	m, err := repo.FindByCodigo(context.Background(), resp.CodigoCliente)
	require.NoError(t, err)
	m.FechaVencimiento = time.Now().AddDate(0, -2, 0)

	renovada, err := svc.RenovarMembresia(context.Background(), resp.CodigoCliente, dto.RenovarMembresiaRequest{
		MontoPagado:   decimal.NewFromFloat(450),
		MesesVigencia: 1,
	})
	require.NoError(t, err)

	esperado := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	assert.Equal(t, esperado, renovada.FechaVencimiento)
	assert.True(t, renovada.Vigente)
}

func TestRenovarCodigoInexistente(t *testing.T) {
	_, _, svc := newMembresiaFixture()

	_, err := svc.RenovarMembresia(context.Background(), "000000", dto.RenovarMembresiaRequest{
		MontoPagado: decimal.NewFromFloat(450),
	})
	assert.ErrorIs(t, err, service.ErrMembresiaNoEncontrada)
}

func TestAltaYRenovacionPaganEnCorte(t *testing.T) {
	_, corteRepo, svc := newMembresiaFixture()

	corte := service.NewCorteService(corteRepo, "")
	_, err := corte.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.Zero})
	require.NoError(t, err)

	resp, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:      "Jorge Ruiz",
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)

	_, err = svc.RenovarMembresia(context.Background(), resp.CodigoCliente, dto.RenovarMembresiaRequest{
		MontoPagado: decimal.NewFromFloat(500),
	})
	require.NoError(t, err)

	require.Len(t, corteRepo.movimientos, 2)
	assert.Equal(t, "Membresía", corteRepo.movimientos[0].Tipo)
	assert.Equal(t, "450", corteRepo.movimientos[0].Monto.String())
	assert.Equal(t, "Renovación", corteRepo.movimientos[1].Tipo)
	assert.Equal(t, "500", corteRepo.movimientos[1].Monto.String())
}

func TestHistorialPagos(t *testing.T) {
	_, _, svc := newMembresiaFixture()

	resp, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:      "Sofía Aguilar",
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)

	_, err = svc.RenovarMembresia(context.Background(), resp.CodigoCliente, dto.RenovarMembresiaRequest{
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)

	pagos, err := svc.HistorialPagos(context.Background(), resp.CodigoCliente)
	require.NoError(t, err)
	assert.Len(t, pagos, 2)
}

func TestHistorialPagosCodigoInexistente(t *testing.T) {
	_, _, svc := newMembresiaFixture()

	_, err := svc.HistorialPagos(context.Background(), "999999")
	assert.ErrorIs(t, err, service.ErrMembresiaNoEncontrada)
}

func TestDesactivarMembresia(t *testing.T) {
	repo, _, svc := newMembresiaFixture()

	resp, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:      "Pedro Lara",
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)

	id := mustParseUUID(t, resp.ID)
	require.NoError(t, svc.DesactivarMembresia(context.Background(), id))

	m, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, m.Activa)

	actual, err := svc.ObtenerMembresia(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, actual.Vigente)
}

func TestMembresiasPorVencer(t *testing.T) {
	repo, _, svc := newMembresiaFixture()

	proxima, err := svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:      "Vence pronto",
		MontoPagado: decimal.NewFromFloat(450),
	})
	require.NoError(t, err)
	m, err := repo.FindByCodigo(context.Background(), proxima.CodigoCliente)
	require.NoError(t, err)
	m.FechaVencimiento = time.Now().AddDate(0, 0, 3)

	_, err = svc.CrearMembresia(context.Background(), dto.CrearMembresiaRequest{
		Nombre:        "Vence en un año",
		MontoPagado:   decimal.NewFromFloat(4500),
		MesesVigencia: 12,
	})
	require.NoError(t, err)

	porVencer, err := svc.MembresiasPorVencer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, porVencer, 1)
	assert.Equal(t, "Vence pronto", porVencer[0].Nombre)
}
