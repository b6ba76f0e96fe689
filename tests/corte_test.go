package tests

import (
	"context"
	"testing"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCorteFixture() (*stubCorteRepo, service.CorteService) {
	repo := newStubCorteRepo()
	return repo, service.NewCorteService(repo, "")
}

func TestAbrirCorte(t *testing.T) {
	_, svc := newCorteFixture()

	resp, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{
		MontoInicial: decimal.NewFromFloat(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "abierto", resp.Estado)
	assert.Equal(t, "500", resp.MontoInicial.String())
	assert.Nil(t, resp.MontoFinal)
	assert.Nil(t, resp.FechaCierre)
}

func TestAbrirCorteConUnoAbiertoFalla(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.Zero})
	require.NoError(t, err)

	_, err = svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.Zero})
	assert.ErrorIs(t, err, service.ErrCorteYaAbierto)
}

func TestMovimientoSinCorteAbiertoSeDescarta(t *testing.T) {
	repo, svc := newCorteFixture()

	err := svc.RegistrarMovimiento(context.Background(), dto.MovimientoCajaRequest{
		Tipo:        "Venta",
		Monto:       decimal.NewFromFloat(120),
		Descripcion: "Venta de mostrador",
	})
	// descarte silencioso: la venta nunca falla por caja cerrada
	require.NoError(t, err)
	assert.Empty(t, repo.movimientos)
}

func TestCerrarCorteCalculaMontoFinal(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{
		MontoInicial: decimal.NewFromFloat(500),
	})
	require.NoError(t, err)

	movimientos := []dto.MovimientoCajaRequest{
		{Tipo: "Venta", Monto: decimal.NewFromFloat(100), Descripcion: "Venta de mostrador"},
		{Tipo: "Membresía", Monto: decimal.NewFromFloat(350), Descripcion: "Alta de membresía"},
		{Tipo: "Compra", Monto: decimal.NewFromFloat(-230), Descripcion: "Compra a proveedor"},
	}
	for _, m := range movimientos {
		require.NoError(t, svc.RegistrarMovimiento(context.Background(), m))
	}

	resp, err := svc.Cerrar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cerrado", resp.Estado)
	require.NotNil(t, resp.MontoFinal)
	// 500 + 100 + 350 - 230
	assert.Equal(t, "720", resp.MontoFinal.String())
	assert.NotNil(t, resp.FechaCierre)
	assert.Len(t, resp.Movimientos, 3)
}

func TestCerrarSinCorteAbierto(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.Cerrar(context.Background())
	assert.ErrorIs(t, err, service.ErrCorteNoAbierto)
}

func TestObtenerAbierto(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.ObtenerAbierto(context.Background())
	assert.ErrorIs(t, err, service.ErrCorteNoAbierto)

	abierto, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.Zero})
	require.NoError(t, err)

	resp, err := svc.ObtenerAbierto(context.Background())
	require.NoError(t, err)
	assert.Equal(t, abierto.ID, resp.ID)

	_, err = svc.Cerrar(context.Background())
	require.NoError(t, err)

	_, err = svc.ObtenerAbierto(context.Background())
	assert.ErrorIs(t, err, service.ErrCorteNoAbierto)
}

func TestReaperturaDespuesDeCierre(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.NewFromFloat(300)})
	require.NoError(t, err)
	_, err = svc.Cerrar(context.Background())
	require.NoError(t, err)

	// cerrado el anterior, un corte nuevo puede abrirse el mismo día
	segundo, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.NewFromFloat(720)})
	require.NoError(t, err)
	assert.Equal(t, "abierto", segundo.Estado)
}

func TestCortesPorDia(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.Zero})
	require.NoError(t, err)
	_, err = svc.Cerrar(context.Background())
	require.NoError(t, err)

	hoy, err := svc.CortesPorDia(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Len(t, hoy, 1)

	ayer, err := svc.CortesPorDia(context.Background(), time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, ayer)
}

func TestCortesPorMes(t *testing.T) {
	_, svc := newCorteFixture()

	_, err := svc.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.Zero})
	require.NoError(t, err)
	_, err = svc.Cerrar(context.Background())
	require.NoError(t, err)

	ahora := time.Now()
	mes, err := svc.CortesPorMes(context.Background(), ahora.Year(), ahora.Month())
	require.NoError(t, err)
	assert.Len(t, mes, 1)
}
