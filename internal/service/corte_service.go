package service

import (
	"context"
	"errors"
	"time"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/dto"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/infra"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"
	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrCorteYaAbierto    = errors.New("ya existe un corte de caja abierto")
	ErrCorteNoAbierto    = errors.New("no hay un corte de caja abierto")
	ErrCorteNoEncontrado = errors.New("corte de caja no encontrado")
)

// CorteService manages the cash register sessions. At most one corte is open
// at any time; movements land on the open corte or are silently dropped.
type CorteService interface {
	Abrir(ctx context.Context, req dto.AbrirCorteRequest) (*dto.CorteResponse, error)
	// RegistrarMovimiento is a silent no-op when no corte is open: sales and
	// memberships must never fail because the register was not opened.
	RegistrarMovimiento(ctx context.Context, req dto.MovimientoCajaRequest) error
	Cerrar(ctx context.Context) (*dto.CorteResponse, error)
	ObtenerAbierto(ctx context.Context) (*dto.CorteResponse, error)
	ObtenerCorte(ctx context.Context, id uuid.UUID) (*dto.CorteResponse, error)
	CortesPorDia(ctx context.Context, fecha time.Time) ([]dto.CorteResponse, error)
	CortesPorMes(ctx context.Context, year int, month time.Month) ([]dto.CorteResponse, error)
	GenerarPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type corteService struct {
	repo        repository.CorteRepository
	storagePath string
}

func NewCorteService(repo repository.CorteRepository, storagePath string) CorteService {
	return &corteService{repo: repo, storagePath: storagePath}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// The service check catches the common case; the partial unique index on
// cortes_caja(estado) WHERE estado = 0 closes the race between two aperturas.

func (s *corteService) Abrir(ctx context.Context, req dto.AbrirCorteRequest) (*dto.CorteResponse, error) {
	if _, err := s.repo.FindAbierto(ctx); err == nil {
		return nil, ErrCorteYaAbierto
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	corte := &model.CorteCaja{
		FechaApertura: time.Now(),
		MontoInicial:  req.MontoInicial,
		Estado:        model.CorteAbierto,
	}
	if err := s.repo.Create(ctx, corte); err != nil {
		return nil, err
	}
	return corteToResponse(corte), nil
}

// ── RegistrarMovimiento ───────────────────────────────────────────────────────

func (s *corteService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoCajaRequest) error {
	corte, err := s.repo.FindAbierto(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().
			Str("tipo", req.Tipo).
			Str("monto", req.Monto.String()).
			Msg("movimiento de caja descartado: no hay corte abierto")
		return nil
	}
	if err != nil {
		return err
	}

	return s.repo.CreateMovimiento(ctx, &model.MovimientoCaja{
		CorteCajaID: corte.ID,
		Tipo:        req.Tipo,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		Fecha:       time.Now(),
	})
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// MontoFinal = MontoInicial + Σ movimientos. The sum runs in SQL so the
// closed amount always matches the persisted movements.

func (s *corteService) Cerrar(ctx context.Context) (*dto.CorteResponse, error) {
	corte, err := s.repo.FindAbierto(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCorteNoAbierto
	}
	if err != nil {
		return nil, err
	}

	suma, err := s.repo.SumMovimientos(ctx, corte.ID)
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	final := corte.MontoInicial.Add(suma)
	corte.FechaCierre = &ahora
	corte.MontoFinal = &final
	corte.Estado = model.CorteCerrado
	if err := s.repo.Update(ctx, corte); err != nil {
		return nil, err
	}

	return s.ObtenerCorte(ctx, corte.ID)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *corteService) ObtenerAbierto(ctx context.Context) (*dto.CorteResponse, error) {
	corte, err := s.repo.FindAbierto(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCorteNoAbierto
	}
	if err != nil {
		return nil, err
	}
	return s.ObtenerCorte(ctx, corte.ID)
}

func (s *corteService) ObtenerCorte(ctx context.Context, id uuid.UUID) (*dto.CorteResponse, error) {
	corte, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCorteNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return corteToResponse(corte), nil
}

func (s *corteService) CortesPorDia(ctx context.Context, fecha time.Time) ([]dto.CorteResponse, error) {
	cortes, err := s.repo.ListPorDia(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return cortesToResponses(cortes), nil
}

func (s *corteService) CortesPorMes(ctx context.Context, year int, month time.Month) ([]dto.CorteResponse, error) {
	cortes, err := s.repo.ListPorMes(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return cortesToResponses(cortes), nil
}

func (s *corteService) GenerarPDF(ctx context.Context, id uuid.UUID) (string, error) {
	corte, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrCorteNoEncontrado
	}
	if err != nil {
		return "", err
	}
	return infra.GenerateCortePDF(corte, s.storagePath)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func corteToResponse(c *model.CorteCaja) *dto.CorteResponse {
	estado := "abierto"
	if c.Estado == model.CorteCerrado {
		estado = "cerrado"
	}
	resp := &dto.CorteResponse{
		ID:            c.ID.String(),
		FechaApertura: c.FechaApertura.Format("2006-01-02T15:04:05Z"),
		MontoInicial:  c.MontoInicial,
		MontoFinal:    c.MontoFinal,
		Estado:        estado,
		Movimientos:   make([]dto.MovimientoCajaResponse, 0, len(c.Movimientos)),
	}
	if c.FechaCierre != nil {
		cierre := c.FechaCierre.Format("2006-01-02T15:04:05Z")
		resp.FechaCierre = &cierre
	}
	for _, m := range c.Movimientos {
		resp.Movimientos = append(resp.Movimientos, dto.MovimientoCajaResponse{
			ID:          m.ID.String(),
			Tipo:        m.Tipo,
			Monto:       m.Monto,
			Descripcion: m.Descripcion,
			Fecha:       m.Fecha.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp
}

func cortesToResponses(cortes []model.CorteCaja) []dto.CorteResponse {
	out := make([]dto.CorteResponse, 0, len(cortes))
	for i := range cortes {
		out = append(out, *corteToResponse(&cortes[i]))
	}
	return out
}
