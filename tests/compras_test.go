package tests

import (
	"context"
	"testing"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCompraFixture() (*stubInventarioRepo, *stubCompraRepo, *stubProductoRepo, *stubCorteRepo, service.CompraService) {
	invRepo := newStubInventarioRepo()
	compraRepo := newStubCompraRepo()
	ventaRepo := newStubVentaRepo()
	productoRepo := newStubProductoRepo()
	corteRepo := newStubCorteRepo()

	inventario := service.NewInventarioService(invRepo, compraRepo, ventaRepo, productoRepo, 5)
	corte := service.NewCorteService(corteRepo, "")
	svc := service.NewCompraService(compraRepo, productoRepo, inventario, corte)
	return invRepo, compraRepo, productoRepo, corteRepo, svc
}

func TestRegistrarCompraAplicaInventario(t *testing.T) {
	invRepo, _, productoRepo, _, svc := newCompraFixture()

	pa := seedProducto(productoRepo, "Proteína Whey 2kg", 12, 45)
	pb := seedProducto(productoRepo, "Creatina 500g", 6, 30)

	resp, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Folio: strPtr("F-1001"),
		Items: []dto.ItemCompraRequest{
			{ProductoID: pa.ID.String(), Cantidad: 2, PrecioPaquete: decimal.NewFromFloat(600)},
			{ProductoID: pb.ID.String(), Cantidad: 3, PrecioPaquete: decimal.NewFromFloat(180)},
		},
	})
	require.NoError(t, err)

	// total = 2*600 + 3*180
	assert.Equal(t, "1740", resp.Total.String())
	require.NotNil(t, resp.Aplicacion)
	assert.Equal(t, 2, resp.Aplicacion.Aplicadas)
	assert.Equal(t, 0, resp.Aplicacion.Omitidas)
	for _, item := range resp.Items {
		assert.True(t, item.InventarioAplicado)
	}

	assert.Equal(t, 24, invRepo.filas[pa.ID].Cantidad)
	assert.Equal(t, 18, invRepo.filas[pb.ID].Cantidad)
}

func TestRegistrarCompraActualizaCostos(t *testing.T) {
	_, _, productoRepo, _, svc := newCompraFixture()

	producto := seedProducto(productoRepo, "Barra proteica", 24, 18)
	precioFinalOriginal := producto.PrecioFinal

	_, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Items: []dto.ItemCompraRequest{
			{ProductoID: producto.ID.String(), Cantidad: 1, PrecioPaquete: decimal.NewFromFloat(250)},
		},
	})
	require.NoError(t, err)

	// la compra es la fuente de verdad del costo; el precio de venta no se toca
	assert.Equal(t, "250", producto.PrecioPaquete.String())
	assert.Equal(t, "10.42", producto.PrecioUnitario.String()) // 250/24 redondeado
	assert.True(t, producto.PrecioFinal.Equal(precioFinalOriginal))
}

func TestRegistrarCompraProductoInexistente(t *testing.T) {
	_, _, _, _, svc := newCompraFixture()

	_, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Items: []dto.ItemCompraRequest{
			{ProductoID: uuid.New().String(), Cantidad: 1, PrecioPaquete: decimal.NewFromFloat(100)},
		},
	})
	assert.ErrorContains(t, err, "no encontrado")
}

func TestRegistrarCompraGastoNegativoEnCorte(t *testing.T) {
	_, _, productoRepo, corteRepo, svc := newCompraFixture()

	corte := service.NewCorteService(corteRepo, "")
	_, err := corte.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.NewFromFloat(1000)})
	require.NoError(t, err)

	producto := seedProducto(productoRepo, "Electrolitos", 10, 22)

	_, err = svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Folio: strPtr("F-2002"),
		Items: []dto.ItemCompraRequest{
			{ProductoID: producto.ID.String(), Cantidad: 2, PrecioPaquete: decimal.NewFromFloat(150)},
		},
	})
	require.NoError(t, err)

	require.Len(t, corteRepo.movimientos, 1)
	mov := corteRepo.movimientos[0]
	assert.Equal(t, "Compra", mov.Tipo)
	assert.Equal(t, "-300", mov.Monto.String())
	assert.Equal(t, "Compra F-2002", mov.Descripcion)
}

// productoRepoInestable deja de encontrar al producto objetivo después de la
// primera consulta, simulando un borrado entre la captura y la aplicación.
type productoRepoInestable struct {
	*stubProductoRepo
	objetivo  uuid.UUID
	consultas int
}

func (r *productoRepoInestable) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	if id == r.objetivo {
		r.consultas++
		if r.consultas > 1 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.stubProductoRepo.FindByID(ctx, id)
}

func TestRegistrarCompraLineaOmitidaNoSeMarcaAplicada(t *testing.T) {
	invRepo := newStubInventarioRepo()
	compraRepo := newStubCompraRepo()
	ventaRepo := newStubVentaRepo()
	base := newStubProductoRepo()
	corteRepo := newStubCorteRepo()

	estable := seedProducto(base, "Vendas elásticas", 1, 20)
	fugaz := seedProducto(base, "Producto descontinuado", 1, 15)
	productoRepo := &productoRepoInestable{stubProductoRepo: base, objetivo: fugaz.ID}

	inventario := service.NewInventarioService(invRepo, compraRepo, ventaRepo, productoRepo, 5)
	svc := service.NewCompraService(compraRepo, productoRepo, inventario, service.NewCorteService(corteRepo, ""))

	resp, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Items: []dto.ItemCompraRequest{
			{ProductoID: estable.ID.String(), Cantidad: 2, PrecioPaquete: decimal.NewFromFloat(100)},
			{ProductoID: fugaz.ID.String(), Cantidad: 1, PrecioPaquete: decimal.NewFromFloat(50)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Aplicacion)
	assert.Equal(t, 1, resp.Aplicacion.Aplicadas)
	assert.Equal(t, 1, resp.Aplicacion.Omitidas)

	// sólo la línea realmente aplicada lleva la bandera en la respuesta
	aplicado := make(map[string]bool, len(resp.Items))
	for _, item := range resp.Items {
		aplicado[item.ProductoID] = item.InventarioAplicado
	}
	assert.True(t, aplicado[estable.ID.String()])
	assert.False(t, aplicado[fugaz.ID.String()])
}

func TestRevertirCompraContraMovimientoPositivo(t *testing.T) {
	invRepo, _, productoRepo, corteRepo, svc := newCompraFixture()

	corte := service.NewCorteService(corteRepo, "")
	_, err := corte.Abrir(context.Background(), dto.AbrirCorteRequest{MontoInicial: decimal.NewFromFloat(1000)})
	require.NoError(t, err)

	producto := seedProducto(productoRepo, "Magnesio", 10, 25)
	resp, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Folio: strPtr("F-3003"),
		Items: []dto.ItemCompraRequest{
			{ProductoID: producto.ID.String(), Cantidad: 1, PrecioPaquete: decimal.NewFromFloat(200)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RevertirCompra(context.Background(), mustParseUUID(t, resp.ID)))

	assert.Equal(t, 0, invRepo.filas[producto.ID].Cantidad)
	require.Len(t, corteRepo.movimientos, 2)
	contra := corteRepo.movimientos[1]
	assert.Equal(t, "Compra", contra.Tipo)
	assert.Equal(t, "200", contra.Monto.String())
	assert.Equal(t, "Reversión de compra F-3003", contra.Descripcion)
}

func TestAplicarCompraReintentable(t *testing.T) {
	invRepo, compraRepo, productoRepo, _, svc := newCompraFixture()

	producto := seedProducto(productoRepo, "Shaker", 1, 15)
	compra := seedCompra(compraRepo, nil, model.CompraItem{
		ProductoID:    producto.ID,
		Cantidad:      5,
		PrecioPaquete: decimal.NewFromFloat(40),
	})

	resumen, err := svc.AplicarCompra(context.Background(), compra.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.Aplicadas)
	assert.Equal(t, 5, invRepo.filas[producto.ID].Cantidad)
}

func TestObtenerCompraNoEncontrada(t *testing.T) {
	_, _, _, _, svc := newCompraFixture()

	_, err := svc.ObtenerCompra(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrCompraNoEncontrada)
}
