package store

import (
	"time"
)

// Obra represents the 'obras' table, one row per public works project.
// Column names follow the capture spreadsheet, so they stay in Spanish.
type Obra struct {
	ID                        int64      `db:"id" json:"id"`
	Programa                  string     `db:"programa" json:"programa"`
	AreaResponsable           string     `db:"area_responsable" json:"area_responsable"`
	EjeInstitucional          string     `db:"eje_institucional" json:"eje_institucional"`
	TipoRecurso               string     `db:"tipo_recurso" json:"tipo_recurso"`
	GrupoProgramatico         string     `db:"grupo_programatico" json:"grupo_programatico"`
	CapituloGasto             string     `db:"capitulo_gasto" json:"capitulo_gasto"`
	PresupuestoModificado     float64    `db:"presupuesto_modificado" json:"presupuesto_modificado"`
	TotalAnteproyecto         float64    `db:"total_anteproyecto" json:"total_anteproyecto"`
	Meta2025                  float64    `db:"meta_2025" json:"meta_2025"`
	Meta2026                  float64    `db:"meta_2026" json:"meta_2026"`
	UnidadMedida              string     `db:"unidad_medida" json:"unidad_medida"`
	CostoUnitario             float64    `db:"costo_unitario" json:"costo_unitario"`
	PresupuestoObra           float64    `db:"presupuesto_obra" json:"presupuesto_obra"`
	Multianual                string     `db:"multianual" json:"multianual"`
	TipoObra                  string     `db:"tipo_obra" json:"tipo_obra"`
	AlcanceTerritorial        string     `db:"alcance_territorial" json:"alcance_territorial"`
	FuenteFinanciamiento      string     `db:"fuente_financiamiento" json:"fuente_financiamiento"`
	EtapaDesarrollo           string     `db:"etapa_desarrollo" json:"etapa_desarrollo"`
	ComplejidadTecnica        string     `db:"complejidad_tecnica" json:"complejidad_tecnica"`
	DescripcionImpactoSocial  string     `db:"descripcion_impacto_social" json:"descripcion_impacto_social"`
	AlineacionEstrategica     int        `db:"alineacion_estrategica" json:"alineacion_estrategica"`
	ImpactoSocial             int        `db:"impacto_social" json:"impacto_social"`
	Urgencia                  int        `db:"urgencia" json:"urgencia"`
	ViabilidadEjecucion       int        `db:"viabilidad_ejecucion" json:"viabilidad_ejecucion"`
	RecursosDisponibles       int        `db:"recursos_disponibles" json:"recursos_disponibles"`
	NivelRiesgo               int        `db:"nivel_riesgo" json:"nivel_riesgo"`
	NivelDependencia          int        `db:"nivel_dependencia" json:"nivel_dependencia"`
	PuntuacionPonderada       float64    `db:"puntuacion_ponderada" json:"puntuacion_ponderada"`
	SemaforoTecnico           string     `db:"semaforo_tecnico" json:"semaforo_tecnico"`
	SemaforoPresupuestal      string     `db:"semaforo_presupuestal" json:"semaforo_presupuestal"`
	SemaforoJuridico          string     `db:"semaforo_juridico" json:"semaforo_juridico"`
	SemaforoCronograma        string     `db:"semaforo_cronograma" json:"semaforo_cronograma"`
	SemaforoAdministrativo    string     `db:"semaforo_administrativo" json:"semaforo_administrativo"`
	Alcaldias                 string     `db:"alcaldias" json:"alcaldias"`
	UbicacionEspecifica       string     `db:"ubicacion_especifica" json:"ubicacion_especifica"`
	BeneficiariosDirectos     int64      `db:"beneficiarios_directos" json:"beneficiarios_directos"`
	BeneficiariosTexto        string     `db:"beneficiarios_texto" json:"beneficiarios_texto"`
	PoblacionObjetivo         string     `db:"poblacion_objetivo" json:"poblacion_objetivo"`
	FechaInicioProgramada     *time.Time `db:"fecha_inicio_programada" json:"fecha_inicio_programada"`
	FechaFinProgramada        *time.Time `db:"fecha_fin_programada" json:"fecha_fin_programada"`
	DuracionMeses             string     `db:"duracion_meses" json:"duracion_meses"`
	FechaInicioReal           *time.Time `db:"fecha_inicio_real" json:"fecha_inicio_real"`
	FechaFinReal              *time.Time `db:"fecha_fin_real" json:"fecha_fin_real"`
	AvanceFisico              float64    `db:"avance_fisico" json:"avance_fisico"`
	AvanceFinanciero          float64    `db:"avance_financiero" json:"avance_financiero"`
	EstatusGeneral            string     `db:"estatus_general" json:"estatus_general"`
	PermisosRequeridos        string     `db:"permisos_requeridos" json:"permisos_requeridos"`
	EstadoPermisos            string     `db:"estado_permisos" json:"estado_permisos"`
	RequerimientosEspecificos string     `db:"requerimientos_especificos" json:"requerimientos_especificos"`
	ResponsableOperativo      string     `db:"responsable_operativo" json:"responsable_operativo"`
	Contratista               string     `db:"contratista" json:"contratista"`
	Observaciones             string     `db:"observaciones" json:"observaciones"`
	ProblemasIdentificados    string     `db:"problemas_identificados" json:"problemas_identificados"`
	AccionesCorrectivas       string     `db:"acciones_correctivas" json:"acciones_correctivas"`
	UltimaActualizacion       *time.Time `db:"ultima_actualizacion" json:"ultima_actualizacion"`
	ProblemaResuelto          string     `db:"problema_resuelto" json:"problema_resuelto"`
	SolucionOfrecida          string     `db:"solucion_ofrecida" json:"solucion_ofrecida"`
	BeneficioCiudadano        string     `db:"beneficio_ciudadano" json:"beneficio_ciudadano"`
	DatoDestacado             string     `db:"dato_destacado" json:"dato_destacado"`
	AlineacionGobierno        string     `db:"alineacion_gobierno" json:"alineacion_gobierno"`
	PerfilPoblacion           string     `db:"perfil_poblacion" json:"perfil_poblacion"`
	RelevanciaComunicacional  string     `db:"relevancia_comunicacional" json:"relevancia_comunicacional"`
	HitosComunicacionales     string     `db:"hitos_comunicacionales" json:"hitos_comunicacionales"`
	MensajesClave             string     `db:"mensajes_clave" json:"mensajes_clave"`
	EstrategiaComunicacion    string     `db:"estrategia_comunicacion" json:"estrategia_comunicacion"`
	ControlCaptura            string     `db:"control_captura" json:"control_captura"`
	NotasControl              string     `db:"notas_control" json:"notas_control"`
	InsertedAt                time.Time  `db:"inserted_at" json:"inserted_at"`
	UpdatedAt                 time.Time  `db:"updated_at" json:"updated_at"`
}

// ImportHistory represents the 'import_history' table, one row per file
// import run.
type ImportHistory struct {
	ID           int64     `db:"id" json:"id"`
	SourceFile   string    `db:"source_file" json:"source_file"`
	TriggerType  string    `db:"trigger_type" json:"trigger_type"`
	Status       string    `db:"status" json:"status"`
	RowsImported int       `db:"rows_imported" json:"rows_imported"`
	RowsSkipped  int       `db:"rows_skipped" json:"rows_skipped"`
	ProcessedAt  time.Time `db:"processed_at" json:"processed_at"`
}

const (
	ImportStatusSuccess    = "success"
	ImportStatusFailure    = "failure"
	ImportStatusInProgress = "in_progress"
)
