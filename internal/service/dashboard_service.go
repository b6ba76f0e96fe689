package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dashboardCacheKey = "dashboard:resumen"

// DashboardService aggregates the recepción dashboard. The summary is
// cache-aside in Redis: invalidation is by TTL only, the figures tolerate
// staleness of a few minutes.
type DashboardService interface {
	Resumen(ctx context.Context) (*dto.DashboardResponse, error)
	InvalidarCache(ctx context.Context) error
}

type dashboardService struct {
	repo            repository.DashboardRepository
	inventarioRepo  repository.InventarioRepository
	preRegistroRepo repository.PreRegistroRepository
	rdb             *redis.Client
	cacheTTL        time.Duration
	stockBajoLimite int
}

func NewDashboardService(
	repo repository.DashboardRepository,
	inventarioRepo repository.InventarioRepository,
	preRegistroRepo repository.PreRegistroRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	stockBajoLimite int,
) DashboardService {
	return &dashboardService{
		repo:            repo,
		inventarioRepo:  inventarioRepo,
		preRegistroRepo: preRegistroRepo,
		rdb:             rdb,
		cacheTTL:        cacheTTL,
		stockBajoLimite: stockBajoLimite,
	}
}

func (s *dashboardService) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				resp.DesdeCache = true
				return &resp, nil
			}
		}
	}

	resp, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	// populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			if err := s.rdb.Set(context.Background(), dashboardCacheKey, b, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard: no se pudo poblar el cache")
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) InvalidarCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, dashboardCacheKey).Err()
}

func (s *dashboardService) build(ctx context.Context) (*dto.DashboardResponse, error) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	manana := hoy.AddDate(0, 0, 1)
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	finMes := inicioMes.AddDate(0, 1, 0)

	activas, err := s.repo.CountMembresiasActivas(ctx)
	if err != nil {
		return nil, err
	}
	vencidas, err := s.repo.CountMembresiasVencidas(ctx)
	if err != nil {
		return nil, err
	}
	porVencer, err := s.repo.CountMembresiasPorVencer(ctx, 7)
	if err != nil {
		return nil, err
	}

	ingresosHoy, err := s.ingresos(ctx, hoy, manana)
	if err != nil {
		return nil, err
	}
	ingresosMes, err := s.ingresos(ctx, inicioMes, finMes)
	if err != nil {
		return nil, err
	}

	ventasHoy, err := s.repo.CountVentas(ctx, hoy, manana)
	if err != nil {
		return nil, err
	}
	visitasHoy, err := s.repo.CountVisitas(ctx, hoy, manana)
	if err != nil {
		return nil, err
	}

	gastosMes, err := s.repo.SumComprasAplicadas(ctx, inicioMes, finMes)
	if err != nil {
		return nil, err
	}

	stockBajo, err := s.inventarioRepo.StockBajo(ctx, s.stockBajoLimite)
	if err != nil {
		return nil, err
	}
	pendientes, err := s.preRegistroRepo.CountPendientes(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.repo.TopProductos(ctx, inicioMes, finMes, 5)
	if err != nil {
		return nil, err
	}
	topResp := make([]dto.TopProductoResponse, 0, len(top))
	for _, t := range top {
		topResp = append(topResp, dto.TopProductoResponse{
			ProductoID: t.ProductoID.String(),
			Nombre:     t.Nombre,
			Piezas:     t.Piezas,
			Importe:    t.Importe,
		})
	}

	meses, err := s.repo.IngresosPorMes(ctx, ahora.Year())
	if err != nil {
		return nil, err
	}
	mesesResp := make([]dto.IngresoMesResponse, 0, len(meses))
	for _, m := range meses {
		mesesResp = append(mesesResp, dto.IngresoMesResponse{
			Mes:        m.Mes,
			Ventas:     m.Ventas,
			Visitas:    m.Visitas,
			Membresias: m.Membresias,
			Total:      m.Ventas.Add(m.Visitas).Add(m.Membresias),
		})
	}

	return &dto.DashboardResponse{
		MembresiasActivas:      activas,
		MembresiasVencidas:     vencidas,
		MembresiasPorVencer:    porVencer,
		VisitasHoy:             visitasHoy,
		VentasHoy:              ventasHoy,
		IngresosHoy:            *ingresosHoy,
		IngresosMes:            *ingresosMes,
		GastosMes:              gastosMes,
		ProductosStockBajo:     len(stockBajo),
		PreRegistrosPendientes: pendientes,
		TopProductos:           topResp,
		IngresosPorMes:         mesesResp,
		GeneradoEn:             ahora.Format("2006-01-02T15:04:05Z"),
	}, nil
}

func (s *dashboardService) ingresos(ctx context.Context, desde, hasta time.Time) (*dto.IngresosPeriodo, error) {
	ventas, err := s.repo.SumVentas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	visitas, err := s.repo.SumVisitas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	membresias, err := s.repo.SumPagosMembresia(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return &dto.IngresosPeriodo{
		Ventas:     ventas,
		Visitas:    visitas,
		Membresias: membresias,
		Total:      decimal.Sum(ventas, visitas, membresias),
	}, nil
}
