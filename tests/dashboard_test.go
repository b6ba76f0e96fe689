package tests

import (
	"context"
	"testing"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumenAgregaLasFuentes(t *testing.T) {
	dashRepo := &stubDashboardRepo{
		activas:    40,
		vencidas:   5,
		porVencer:  3,
		ventas:     12,
		visitas:    7,
		sumVentas:  decimal.NewFromFloat(1800),
		sumVisitas: decimal.NewFromFloat(420),
		sumPagos:   decimal.NewFromFloat(2250),
		gastos:     decimal.NewFromFloat(960),
		top: []repository.TopProducto{
			{ProductoID: uuid.New(), Nombre: "Proteína Whey 2kg", Piezas: 31, Importe: decimal.NewFromFloat(1395)},
		},
		meses: []repository.IngresoMes{
			{Mes: 1, Ventas: decimal.NewFromFloat(100), Visitas: decimal.NewFromFloat(20), Membresias: decimal.NewFromFloat(300)},
		},
	}

	invRepo := newStubInventarioRepo()
	pa := uuid.New()
	pb := uuid.New()
	seedInventario(invRepo, pa, 2)  // bajo
	seedInventario(invRepo, pb, 80) // sano

	preRepo := newStubPreRegistroRepo()

	// sin Redis: cada resumen se reconstruye
	svc := service.NewDashboardService(dashRepo, invRepo, preRepo, nil, time.Minute, 5)

	resp, err := svc.Resumen(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.DesdeCache)
	assert.Equal(t, int64(40), resp.MembresiasActivas)
	assert.Equal(t, int64(5), resp.MembresiasVencidas)
	assert.Equal(t, int64(3), resp.MembresiasPorVencer)
	assert.Equal(t, int64(12), resp.VentasHoy)
	assert.Equal(t, int64(7), resp.VisitasHoy)

	// total del periodo = ventas + visitas + pagos de membresía
	assert.Equal(t, "4470", resp.IngresosHoy.Total.String())
	assert.Equal(t, "960", resp.GastosMes.String())

	assert.Equal(t, 1, resp.ProductosStockBajo)
	assert.Equal(t, int64(0), resp.PreRegistrosPendientes)

	require.Len(t, resp.TopProductos, 1)
	assert.Equal(t, "Proteína Whey 2kg", resp.TopProductos[0].Nombre)

	require.Len(t, resp.IngresosPorMes, 1)
	assert.Equal(t, "420", resp.IngresosPorMes[0].Total.String())
	assert.NotEmpty(t, resp.GeneradoEn)
}

func TestInvalidarCacheSinRedisEsNoOp(t *testing.T) {
	svc := service.NewDashboardService(&stubDashboardRepo{}, newStubInventarioRepo(), newStubPreRegistroRepo(), nil, time.Minute, 5)
	assert.NoError(t, svc.InvalidarCache(context.Background()))
}
