package profitloss

import (
	"strings"
	"unicode"

	"franchise_dashboard/pkg/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// CONCEPT NORMALIZATION - Canonical lookup keys for row labels
// =============================================================================

// NormalizeConceptName turns a raw row label into its lookup key: accents
// removed, lower case, single spaces, no trailing colon.
// Examples:
//
//	"  Costo de   Alimentos " → "costo de alimentos"
//	"PROMOCIÓN:" → "promocion"
//	"Año" → "ano"
func NormalizeConceptName(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, raw)
	if err != nil {
		stripped = raw
	}
	key := strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
	key = strings.TrimSpace(strings.TrimSuffix(key, ":"))
	return key
}

// =============================================================================
// ROW CLASSIFICATION - Headers and totals carry no line item data
// =============================================================================

// headerLabels are section headings and repeated column headers seen in exports.
var headerLabels = map[string]bool{
	"concepto":               true,
	"conceptos":              true,
	"cuenta":                 true,
	"descripcion":            true,
	"cuenta de explotacion":  true,
	"cuenta de resultados":   true,
	"perdidas y ganancias":   true,
	"p&l":                    true,
	"ingresos":               true,
	"gastos":                 true,
	"coste de ventas":        true,
	"costo de ventas":        true,
	"gastos controlables":    true,
	"gastos no controlables": true,
	"otros gastos":           true,
}

// IsHeaderOrTotalLine reports whether a normalized label is a heading,
// a repeated column header or a total/subtotal row.
func IsHeaderOrTotalLine(key string) bool {
	if key == "" {
		return true
	}
	if headerLabels[key] {
		return true
	}
	if key == "total" || strings.HasPrefix(key, "total ") || strings.HasSuffix(key, " total") {
		return true
	}
	if strings.HasPrefix(key, "subtotal") || strings.HasPrefix(key, "sub-total") || strings.HasPrefix(key, "sub total") {
		return true
	}
	// Header rows repeated inside the body ("Ejerc. 2023", "Ejercicio 2024")
	if strings.HasPrefix(key, "ejerc") && yearPattern.MatchString(key) {
		return true
	}
	return false
}

// =============================================================================
// CONCEPT MAPPING - Normalized label → canonical field
// =============================================================================

// conceptMapping is read-only after package initialization.
var conceptMapping = map[string]models.Field{
	"ano":       models.FieldYear,
	"ejercicio": models.FieldYear,
	"year":      models.FieldYear,

	"ventas netas":          models.FieldNetSales,
	"ventas":                models.FieldNetSales,
	"venta neta":            models.FieldNetSales,
	"net sales":             models.FieldNetSales,
	"otros ingresos":        models.FieldOtherRevenue,
	"other revenue":         models.FieldOtherRevenue,
	"ventas no producto":    models.FieldNonProductSales,
	"ventas de no producto": models.FieldNonProductSales,
	"non product sales":     models.FieldNonProductSales,

	"costo de alimentos":       models.FieldFoodCost,
	"coste de alimentos":       models.FieldFoodCost,
	"costo comida":             models.FieldFoodCost,
	"coste comida":             models.FieldFoodCost,
	"comida":                   models.FieldFoodCost,
	"food":                     models.FieldFoodCost,
	"food cost":                models.FieldFoodCost,
	"costo de papel":           models.FieldPaperCost,
	"coste de papel":           models.FieldPaperCost,
	"coste papel":              models.FieldPaperCost,
	"papel":                    models.FieldPaperCost,
	"paper":                    models.FieldPaperCost,
	"paper cost":               models.FieldPaperCost,
	"costo no producto":        models.FieldNonProductCost,
	"coste no producto":        models.FieldNonProductCost,
	"costo ventas no producto": models.FieldNonProductCost,

	"mano de obra":               models.FieldCrewLabor,
	"mano de obra crew":          models.FieldCrewLabor,
	"crew labor":                 models.FieldCrewLabor,
	"crew":                       models.FieldCrewLabor,
	"mano de obra gerencia":      models.FieldManagementLabor,
	"gerencia":                   models.FieldManagementLabor,
	"management labor":           models.FieldManagementLabor,
	"seguridad social":           models.FieldSocialSecurity,
	"social security":            models.FieldSocialSecurity,
	"gastos de viaje":            models.FieldTravelExpenses,
	"gastos viaje":               models.FieldTravelExpenses,
	"viajes":                     models.FieldTravelExpenses,
	"publicidad":                 models.FieldAdvertising,
	"advertising":                models.FieldAdvertising,
	"promocion":                  models.FieldPromotion,
	"promotion":                  models.FieldPromotion,
	"servicios exteriores":       models.FieldExternalServices,
	"outside services":           models.FieldExternalServices,
	"uniformes":                  models.FieldUniforms,
	"uniforms":                   models.FieldUniforms,
	"suministros operacion":      models.FieldOperationSupplies,
	"suministros de operacion":   models.FieldOperationSupplies,
	"operating supplies":         models.FieldOperationSupplies,
	"mantenimiento":              models.FieldMaintenance,
	"reparacion y mantenimiento": models.FieldMaintenance,
	"maintenance":                models.FieldMaintenance,
	"servicios publicos":         models.FieldUtilities,
	"utilities":                  models.FieldUtilities,
	"gastos de oficina":          models.FieldOfficeExpenses,
	"gastos oficina":             models.FieldOfficeExpenses,
	"diferencias de caja":        models.FieldCashDifferences,
	"diferencias caja":           models.FieldCashDifferences,
	"otros gastos controlables":  models.FieldOtherControllables,
	"otros controlables":         models.FieldOtherControllables,
	"p.a.c.":                     models.FieldPAC,
	"p.a.c":                      models.FieldPAC,
	"pac":                        models.FieldPAC,

	"renta":                           models.FieldRent,
	"alquiler":                        models.FieldRent,
	"rent":                            models.FieldRent,
	"renta adicional":                 models.FieldAdditionalRent,
	"additional rent":                 models.FieldAdditionalRent,
	"royalty":                         models.FieldRoyalty,
	"royalties":                       models.FieldRoyalty,
	"canon":                           models.FieldRoyalty,
	"oficina y legal":                 models.FieldOfficeLegal,
	"gastos legales":                  models.FieldOfficeLegal,
	"office legal":                    models.FieldOfficeLegal,
	"seguros":                         models.FieldInsurance,
	"insurance":                       models.FieldInsurance,
	"tasas y licencias":               models.FieldTaxesLicenses,
	"impuestos y licencias":           models.FieldTaxesLicenses,
	"depreciaciones y amortizaciones": models.FieldDepreciation,
	"depreciacion":                    models.FieldDepreciation,
	"amortizacion":                    models.FieldDepreciation,
	"depreciation":                    models.FieldDepreciation,
	"intereses":                       models.FieldInterest,
	"interest":                        models.FieldInterest,
	"otros gastos no controlables":    models.FieldOtherNonControllable,
	"otros no controlables":           models.FieldOtherNonControllable,
	"s.o.i.":                          models.FieldSOI,
	"s.o.i":                           models.FieldSOI,
	"soi":                             models.FieldSOI,

	"salario franquiciado":     models.FieldDrawSalary,
	"draw salary":              models.FieldDrawSalary,
	"gastos generales":         models.FieldGeneralExpenses,
	"general expenses":         models.FieldGeneralExpenses,
	"pago prestamo":            models.FieldLoanPayment,
	"cuota prestamo":           models.FieldLoanPayment,
	"loan payment":             models.FieldLoanPayment,
	"inversion fondos propios": models.FieldInvestmentOwnFunds,
	"cash flow":                models.FieldCashFlow,
	"flujo de caja":            models.FieldCashFlow,
}

// LookupField returns the canonical field for a normalized label.
func LookupField(key string) (models.Field, bool) {
	f, ok := conceptMapping[key]
	return f, ok
}
