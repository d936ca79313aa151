package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("record not found")

type ObraStore struct {
	db *sqlx.DB
}

// obraColumns lists every writable column of the obras table, in capture
// order. Insert and update statements are assembled from this list so the
// column set lives in one place.
var obraColumns = []string{
	"programa",
	"area_responsable",
	"eje_institucional",
	"tipo_recurso",
	"grupo_programatico",
	"capitulo_gasto",
	"presupuesto_modificado",
	"total_anteproyecto",
	"meta_2025",
	"meta_2026",
	"unidad_medida",
	"costo_unitario",
	"presupuesto_obra",
	"multianual",
	"tipo_obra",
	"alcance_territorial",
	"fuente_financiamiento",
	"etapa_desarrollo",
	"complejidad_tecnica",
	"descripcion_impacto_social",
	"alineacion_estrategica",
	"impacto_social",
	"urgencia",
	"viabilidad_ejecucion",
	"recursos_disponibles",
	"nivel_riesgo",
	"nivel_dependencia",
	"puntuacion_ponderada",
	"semaforo_tecnico",
	"semaforo_presupuestal",
	"semaforo_juridico",
	"semaforo_cronograma",
	"semaforo_administrativo",
	"alcaldias",
	"ubicacion_especifica",
	"beneficiarios_directos",
	"beneficiarios_texto",
	"poblacion_objetivo",
	"fecha_inicio_programada",
	"fecha_fin_programada",
	"duracion_meses",
	"fecha_inicio_real",
	"fecha_fin_real",
	"avance_fisico",
	"avance_financiero",
	"estatus_general",
	"permisos_requeridos",
	"estado_permisos",
	"requerimientos_especificos",
	"responsable_operativo",
	"contratista",
	"observaciones",
	"problemas_identificados",
	"acciones_correctivas",
	"ultima_actualizacion",
	"problema_resuelto",
	"solucion_ofrecida",
	"beneficio_ciudadano",
	"dato_destacado",
	"alineacion_gobierno",
	"perfil_poblacion",
	"relevancia_comunicacional",
	"hitos_comunicacionales",
	"mensajes_clave",
	"estrategia_comunicacion",
	"control_captura",
	"notas_control",
	"inserted_at",
	"updated_at",
}

// replaceChunkSize keeps bulk inserts well under the postgres placeholder
// limit (65535 parameters per statement).
const replaceChunkSize = 500

func obraInsertQuery() string {
	placeholders := make([]string, len(obraColumns))
	for i, col := range obraColumns {
		placeholders[i] = ":" + col
	}
	return fmt.Sprintf(
		"INSERT INTO obras (%s) VALUES (%s)",
		strings.Join(obraColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

func obraUpdateQuery() string {
	assignments := make([]string, 0, len(obraColumns))
	for _, col := range obraColumns {
		if col == "inserted_at" {
			continue
		}
		assignments = append(assignments, col+" = :"+col)
	}
	return fmt.Sprintf("UPDATE obras SET %s WHERE id = :id", strings.Join(assignments, ", "))
}

// ReplaceAll swaps the entire obras table for the given batch inside one
// transaction. Readers never observe a partially imported dataset.
func (os *ObraStore) ReplaceAll(ctx context.Context, obras []Obra) error {
	tx, err := os.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM obras"); err != nil {
		return err
	}

	query := obraInsertQuery()
	for start := 0; start < len(obras); start += replaceChunkSize {
		end := start + replaceChunkSize
		if end > len(obras) {
			end = len(obras)
		}
		if _, err := tx.NamedExecContext(ctx, query, obras[start:end]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (os *ObraStore) List(ctx context.Context) ([]Obra, error) {
	obras := []Obra{}
	err := os.db.SelectContext(ctx, &obras,
		"SELECT * FROM obras ORDER BY puntuacion_ponderada DESC, id ASC")
	if err != nil {
		return nil, err
	}
	return obras, nil
}

func (os *ObraStore) GetByID(ctx context.Context, id int64) (*Obra, error) {
	var obra Obra
	err := os.db.GetContext(ctx, &obra, "SELECT * FROM obras WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &obra, nil
}

func (os *ObraStore) Create(ctx context.Context, obra *Obra) error {
	now := time.Now().UTC()
	obra.InsertedAt = now
	obra.UpdatedAt = now

	rows, err := sqlx.NamedQueryContext(ctx, os.db, obraInsertQuery()+" RETURNING id", obra)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&obra.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (os *ObraStore) Update(ctx context.Context, obra *Obra) error {
	obra.UpdatedAt = time.Now().UTC()

	result, err := os.db.NamedExecContext(ctx, obraUpdateQuery(), obra)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (os *ObraStore) Delete(ctx context.Context, id int64) error {
	result, err := os.db.ExecContext(ctx, "DELETE FROM obras WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
