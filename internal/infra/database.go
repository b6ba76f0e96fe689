package infra

import (
	"fmt"

	"github.com/fiendsfit300-lab/backend-Fitbyte/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (partial unique indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates the schema. Shared with the integration tests so the
// containerized database gets the exact same layout.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Proveedor{},
		&model.Producto{},
		&model.Compra{},
		&model.CompraItem{},
		&model.Venta{},
		&model.VentaItem{},
		&model.Inventario{},
		&model.HistorialMovimiento{},
		&model.CorteCaja{},
		&model.MovimientoCaja{},
		&model.Membresia{},
		&model.MembresiaHistorial{},
		&model.VentaVisita{},
		&model.PreRegistro{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// At most one corte de caja in estado Abierto (0), enforced at the
		// storage layer in addition to the service-level check.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_cortes_caja_abierto') THEN
		    CREATE UNIQUE INDEX uni_cortes_caja_abierto
		        ON cortes_caja (estado)
		        WHERE estado = 0;
		  END IF;
		END $$`,
		// The history filters always combine product and date range.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_historial_producto_fecha') THEN
		    CREATE INDEX idx_historial_producto_fecha
		        ON historial_movimientos (producto_id, fecha_movimiento);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
