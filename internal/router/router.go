package router

import (
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/config"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/handler"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/middleware"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	corteRepo := repository.NewCorteRepository(db)
	membresiaRepo := repository.NewMembresiaRepository(db)
	visitaRepo := repository.NewVisitaRepository(db)
	preRegistroRepo := repository.NewPreRegistroRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	corteSvc := service.NewCorteService(corteRepo, cfg.PDFStoragePath)
	inventarioSvc := service.NewInventarioService(inventarioRepo, compraRepo, ventaRepo, productoRepo, cfg.StockBajoLimite)
	compraSvc := service.NewCompraService(compraRepo, productoRepo, inventarioSvc, corteSvc)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, inventarioSvc, corteSvc)
	productoSvc := service.NewProductoService(productoRepo, proveedorRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	membresiaSvc := service.NewMembresiaService(membresiaRepo, corteSvc)
	visitaSvc := service.NewVisitaService(visitaRepo, corteSvc)
	preRegistroSvc := service.NewPreRegistroService(preRegistroRepo)
	dashboardSvc := service.NewDashboardService(
		dashboardRepo, inventarioRepo, preRegistroRepo, rdb,
		time.Duration(cfg.DashboardCacheTTLSec)*time.Second, cfg.StockBajoLimite)

	// ── Handlers ─────────────────────────────────────────────────────────────
	proveedoresH := handler.NewProveedorHandler(proveedorSvc)
	productosH := handler.NewProductoHandler(productoSvc)
	comprasH := handler.NewCompraHandler(compraSvc)
	ventasH := handler.NewVentaHandler(ventaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	corteH := handler.NewCorteHandler(corteSvc)
	membresiasH := handler.NewMembresiaHandler(membresiaSvc)
	visitasH := handler.NewVisitaHandler(visitaSvc)
	preRegistrosH := handler.NewPreRegistroHandler(preRegistroSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		prov := v1.Group("/proveedores")
		{
			prov.POST("", proveedoresH.Crear)
			prov.GET("", proveedoresH.List)
			prov.GET("/:id", proveedoresH.Obtener)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Desactivar)
			prov.GET("/:id/productos", productosH.PorProveedor)
		}

		prods := v1.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.List)
			prods.GET("/:id", productosH.Obtener)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.POST("/:id/reactivar", productosH.Reactivar)
		}

		compras := v1.Group("/compras")
		{
			compras.POST("", comprasH.Registrar)
			compras.GET("", comprasH.List)
			compras.GET("/:id", comprasH.Obtener)
			compras.POST("/:id/aplicar", comprasH.Aplicar)
			compras.POST("/:id/revertir", comprasH.Revertir)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.List)
			ventas.GET("/:id", ventasH.Obtener)
			ventas.POST("/:id/revertir", ventasH.Revertir)
		}

		inv := v1.Group("/inventario")
		{
			inv.GET("", inventarioH.List)
			inv.POST("/ajuste", inventarioH.Ajustar)
			inv.GET("/movimientos", inventarioH.Movimientos)
			inv.GET("/stock-bajo", inventarioH.StockBajo)
			inv.GET("/reporte", inventarioH.Reporte)
			inv.GET("/:producto_id/stock", inventarioH.Stock)
		}

		cortes := v1.Group("/cortes")
		{
			cortes.POST("/abrir", corteH.Abrir)
			cortes.POST("/cerrar", corteH.Cerrar)
			cortes.POST("/movimiento", corteH.RegistrarMovimiento)
			cortes.GET("/abierto", corteH.Abierto)
			cortes.GET("/dia", corteH.PorDia)
			cortes.GET("/mes", corteH.PorMes)
			cortes.GET("/:id", corteH.Obtener)
			cortes.GET("/:id/pdf", corteH.PDF)
		}

		membresias := v1.Group("/membresias")
		{
			membresias.POST("", membresiasH.Crear)
			membresias.GET("", membresiasH.List)
			membresias.GET("/por-vencer", membresiasH.PorVencer)
			membresias.GET("/codigo/:codigo", membresiasH.PorCodigo)
			membresias.POST("/codigo/:codigo/renovar", membresiasH.Renovar)
			membresias.GET("/codigo/:codigo/historial", membresiasH.Historial)
			membresias.GET("/:id", membresiasH.Obtener)
			membresias.PUT("/:id", membresiasH.Actualizar)
			membresias.DELETE("/:id", membresiasH.Desactivar)
		}

		visitas := v1.Group("/visitas")
		{
			visitas.POST("", visitasH.Registrar)
			visitas.GET("", visitasH.List)
			visitas.GET("/semana", visitasH.Semana)
			visitas.GET("/mes", visitasH.Mes)
			visitas.GET("/:id", visitasH.Obtener)
		}

		preregistros := v1.Group("/preregistros")
		{
			preregistros.POST("", preRegistrosH.Crear)
			preregistros.GET("", preRegistrosH.List)
			preregistros.POST("/:id/aceptar", preRegistrosH.Aceptar)
			preregistros.POST("/:id/rechazar", preRegistrosH.Rechazar)
		}

		v1.GET("/dashboard", dashboardH.Resumen)
		v1.POST("/dashboard/refrescar", dashboardH.Refrescar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
