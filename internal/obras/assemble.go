package obras

import (
	"time"

	"github.com/obrascdmx/obras_tracker/internal/store"
)

// AssembleObra normalizes one positional source row into a storable record.
// It is total: every cell falls back to a documented default, so a fully
// empty row still yields a valid record.
func AssembleObra(row RawRow, now time.Time) store.Obra {
	criteria := Criteria{
		Alignment:          InterpretScale(row.StrategicAlignment),
		SocialImpact:       InterpretScale(row.SocialImpactLevel),
		Urgency:            InterpretScale(row.Urgency),
		ExecutionViability: InterpretScale(row.ExecutionViability),
		Resources:          InterpretScale(row.AvailableResources),
		Risk:               InterpretScale(row.RiskLevel),
		Dependencies:       InterpretScale(row.DependencyLevel),
	}

	return store.Obra{
		Programa:                  titleText(row.Program, "programa"),
		AreaResponsable:           CleanTextUpper(row.ResponsibleArea, "area_responsable"),
		EjeInstitucional:          titleText(row.InstitutionalAxis, "eje_institucional"),
		TipoRecurso:               titleText(row.ResourceType, "tipo_recurso"),
		GrupoProgramatico:         titleText(row.ProgramGroup, "grupo_programatico"),
		CapituloGasto:             titleText(row.SpendingChapter, "capitulo_gasto"),
		PresupuestoModificado:     CleanMoney(row.ModifiedBudget, true),
		TotalAnteproyecto:         CleanMoney(row.PreProjectTotal, true),
		Meta2025:                  CleanMoney(row.Goal2025, false),
		Meta2026:                  CleanMoney(row.Goal2026, false),
		UnidadMedida:              titleText(row.MeasureUnit, "unidad_medida"),
		CostoUnitario:             CleanMoney(row.UnitCost, false),
		PresupuestoObra:           CleanMoney(row.ProjectBudget, false),
		Multianual:                titleText(row.MultiYear, "multianual"),
		TipoObra:                  titleText(row.WorkType, "tipo_obra"),
		AlcanceTerritorial:        titleText(row.TerritorialScope, "alcance_territorial"),
		FuenteFinanciamiento:      titleText(row.FundingSource, "fuente_financiamiento"),
		EtapaDesarrollo:           titleText(row.DevelopmentStage, "etapa_desarrollo"),
		ComplejidadTecnica:        titleText(row.TechnicalComplexity, "complejidad_tecnica"),
		DescripcionImpactoSocial:  titleText(row.SocialImpactDesc, "descripcion_impacto_social"),
		AlineacionEstrategica:     criteria.Alignment,
		ImpactoSocial:             criteria.SocialImpact,
		Urgencia:                  criteria.Urgency,
		ViabilidadEjecucion:       criteria.ExecutionViability,
		RecursosDisponibles:       criteria.Resources,
		NivelRiesgo:               criteria.Risk,
		NivelDependencia:          criteria.Dependencies,
		PuntuacionPonderada:       criteria.WeightedScore(),
		SemaforoTecnico:           CleanSemaphore(row.TechnicalLight),
		SemaforoPresupuestal:      CleanSemaphore(row.BudgetLight),
		SemaforoJuridico:          CleanSemaphore(row.LegalLight),
		SemaforoCronograma:        CleanSemaphore(row.ScheduleLight),
		SemaforoAdministrativo:    CleanSemaphore(row.AdminLight),
		Alcaldias:                 titleText(row.Municipalities, "alcaldias"),
		UbicacionEspecifica:       titleText(row.SpecificLocation, "ubicacion_especifica"),
		BeneficiariosDirectos:     CleanBeneficiaries(row.DirectBeneficiaries),
		BeneficiariosTexto:        titleText(row.DirectBeneficiaries, "beneficiarios_texto"),
		PoblacionObjetivo:         PlainText(row.TargetPopulation),
		FechaInicioProgramada:     datePtr(row.PlannedStart),
		FechaFinProgramada:        datePtr(row.PlannedEnd),
		DuracionMeses:             PlainText(row.DurationMonths),
		FechaInicioReal:           datePtr(row.ActualStart),
		FechaFinReal:              datePtr(row.ActualEnd),
		AvanceFisico:              CleanPercentage(row.PhysicalProgress),
		AvanceFinanciero:          CleanPercentage(row.FinancialProgress),
		EstatusGeneral:            titleText(row.GeneralStatus, "estatus_general"),
		PermisosRequeridos:        titleText(row.RequiredPermits, "permisos_requeridos"),
		EstadoPermisos:            titleText(row.PermitStatus, "estado_permisos"),
		RequerimientosEspecificos: PlainText(row.SpecificRequirements),
		ResponsableOperativo:      titleText(row.OperationalManager, "responsable_operativo"),
		Contratista:               titleText(row.Contractor, "contratista"),
		Observaciones:             titleText(row.Observations, "observaciones"),
		ProblemasIdentificados:    titleText(row.IdentifiedProblems, "problemas_identificados"),
		AccionesCorrectivas:       titleText(row.CorrectiveActions, "acciones_correctivas"),
		UltimaActualizacion:       datePtr(row.LastUpdate),
		ProblemaResuelto:          titleText(row.ProblemSolved, "problema_resuelto"),
		SolucionOfrecida:          titleText(row.SolutionOffered, "solucion_ofrecida"),
		BeneficioCiudadano:        PlainText(row.CitizenBenefit),
		DatoDestacado:             PlainText(row.NotableFact),
		AlineacionGobierno:        PlainText(row.GovernmentAlignment),
		PerfilPoblacion:           PlainText(row.PopulationProfile),
		RelevanciaComunicacional:  PlainText(row.CommsRelevance),
		HitosComunicacionales:     titleText(row.CommsMilestones, "hitos_comunicacionales"),
		MensajesClave:             PlainText(row.KeyMessages),
		EstrategiaComunicacion:    PlainText(row.CommsStrategy),
		ControlCaptura:            PlainText(row.CaptureControl),
		NotasControl:              PlainText(row.ControlNotes),
		InsertedAt:                now,
		UpdatedAt:                 now,
	}
}

// titleText cleans a cell and title-cases it unless the field default was
// substituted.
func titleText(value any, field string) string {
	s := CleanText(value, field)
	if s == DefaultFor(field) {
		return s
	}
	return Capitalize(s)
}

func datePtr(value any) *time.Time {
	d, ok := ParseDate(value)
	if !ok {
		return nil
	}
	return &d
}
