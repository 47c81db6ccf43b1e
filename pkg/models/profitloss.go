package models

// Field identifies a canonical P&L line item.
type Field string

const (
	FieldYear Field = "year"

	// Revenue
	FieldNetSales        Field = "net_sales"
	FieldOtherRevenue    Field = "other_revenue"
	FieldNonProductSales Field = "non_product_sales"

	// Cost of sales
	FieldFoodCost       Field = "food_cost"
	FieldPaperCost      Field = "paper_cost"
	FieldNonProductCost Field = "non_product_cost"

	// Controllable expenses
	FieldCrewLabor          Field = "crew_labor"
	FieldManagementLabor    Field = "management_labor"
	FieldSocialSecurity     Field = "social_security"
	FieldTravelExpenses     Field = "travel_expenses"
	FieldAdvertising        Field = "advertising"
	FieldPromotion          Field = "promotion"
	FieldExternalServices   Field = "external_services"
	FieldUniforms           Field = "uniforms"
	FieldOperationSupplies  Field = "operation_supplies"
	FieldMaintenance        Field = "maintenance"
	FieldUtilities          Field = "utilities"
	FieldOfficeExpenses     Field = "office_expenses"
	FieldCashDifferences    Field = "cash_differences"
	FieldOtherControllables Field = "other_controllables"
	FieldPAC                Field = "pac"

	// Non-controllable expenses
	FieldRent                 Field = "rent"
	FieldAdditionalRent       Field = "additional_rent"
	FieldRoyalty              Field = "royalty"
	FieldOfficeLegal          Field = "office_legal"
	FieldInsurance            Field = "insurance"
	FieldTaxesLicenses        Field = "taxes_licenses"
	FieldDepreciation         Field = "depreciation"
	FieldInterest             Field = "interest"
	FieldOtherNonControllable Field = "other_non_controllable"
	FieldSOI                  Field = "soi"

	// Below the line
	FieldDrawSalary         Field = "draw_salary"
	FieldGeneralExpenses    Field = "general_expenses"
	FieldLoanPayment        Field = "loan_payment"
	FieldInvestmentOwnFunds Field = "investment_own_funds"
	FieldCashFlow           Field = "cash_flow"
)

// YearlyData is one fiscal year of a restaurant's profit and loss statement.
// Fields never present in the source report stay at zero.
type YearlyData struct {
	Year int `json:"year"`

	NetSales        float64 `json:"net_sales"`
	OtherRevenue    float64 `json:"other_revenue"`
	NonProductSales float64 `json:"non_product_sales"`

	FoodCost       float64 `json:"food_cost"`
	PaperCost      float64 `json:"paper_cost"`
	NonProductCost float64 `json:"non_product_cost"`

	CrewLabor          float64 `json:"crew_labor"`
	ManagementLabor    float64 `json:"management_labor"`
	SocialSecurity     float64 `json:"social_security"`
	TravelExpenses     float64 `json:"travel_expenses"`
	Advertising        float64 `json:"advertising"`
	Promotion          float64 `json:"promotion"`
	ExternalServices   float64 `json:"external_services"`
	Uniforms           float64 `json:"uniforms"`
	OperationSupplies  float64 `json:"operation_supplies"`
	Maintenance        float64 `json:"maintenance"`
	Utilities          float64 `json:"utilities"`
	OfficeExpenses     float64 `json:"office_expenses"`
	CashDifferences    float64 `json:"cash_differences"`
	OtherControllables float64 `json:"other_controllables"`
	PAC                float64 `json:"pac"`

	Rent                 float64 `json:"rent"`
	AdditionalRent       float64 `json:"additional_rent"`
	Royalty              float64 `json:"royalty"`
	OfficeLegal          float64 `json:"office_legal"`
	Insurance            float64 `json:"insurance"`
	TaxesLicenses        float64 `json:"taxes_licenses"`
	Depreciation         float64 `json:"depreciation"`
	Interest             float64 `json:"interest"`
	OtherNonControllable float64 `json:"other_non_controllable"`
	SOI                  float64 `json:"soi"`

	DrawSalary         float64 `json:"draw_salary"`
	GeneralExpenses    float64 `json:"general_expenses"`
	LoanPayment        float64 `json:"loan_payment"`
	InvestmentOwnFunds float64 `json:"investment_own_funds"`
	CashFlow           float64 `json:"cash_flow"`
}

// FieldSpec binds a Field to its display label and its slot in YearlyData.
type FieldSpec struct {
	Field Field
	Label string
	Ptr   func(*YearlyData) *float64
}

// YearlyFields lists every numeric field of YearlyData in statement order.
var YearlyFields = []FieldSpec{
	{FieldNetSales, "Ventas netas", func(y *YearlyData) *float64 { return &y.NetSales }},
	{FieldOtherRevenue, "Otros ingresos", func(y *YearlyData) *float64 { return &y.OtherRevenue }},
	{FieldNonProductSales, "Ventas no producto", func(y *YearlyData) *float64 { return &y.NonProductSales }},
	{FieldFoodCost, "Coste comida", func(y *YearlyData) *float64 { return &y.FoodCost }},
	{FieldPaperCost, "Coste papel", func(y *YearlyData) *float64 { return &y.PaperCost }},
	{FieldNonProductCost, "Coste no producto", func(y *YearlyData) *float64 { return &y.NonProductCost }},
	{FieldCrewLabor, "Mano de obra", func(y *YearlyData) *float64 { return &y.CrewLabor }},
	{FieldManagementLabor, "Mano de obra gerencia", func(y *YearlyData) *float64 { return &y.ManagementLabor }},
	{FieldSocialSecurity, "Seguridad social", func(y *YearlyData) *float64 { return &y.SocialSecurity }},
	{FieldTravelExpenses, "Gastos de viaje", func(y *YearlyData) *float64 { return &y.TravelExpenses }},
	{FieldAdvertising, "Publicidad", func(y *YearlyData) *float64 { return &y.Advertising }},
	{FieldPromotion, "Promoción", func(y *YearlyData) *float64 { return &y.Promotion }},
	{FieldExternalServices, "Servicios exteriores", func(y *YearlyData) *float64 { return &y.ExternalServices }},
	{FieldUniforms, "Uniformes", func(y *YearlyData) *float64 { return &y.Uniforms }},
	{FieldOperationSupplies, "Suministros operación", func(y *YearlyData) *float64 { return &y.OperationSupplies }},
	{FieldMaintenance, "Mantenimiento", func(y *YearlyData) *float64 { return &y.Maintenance }},
	{FieldUtilities, "Servicios públicos", func(y *YearlyData) *float64 { return &y.Utilities }},
	{FieldOfficeExpenses, "Gastos de oficina", func(y *YearlyData) *float64 { return &y.OfficeExpenses }},
	{FieldCashDifferences, "Diferencias de caja", func(y *YearlyData) *float64 { return &y.CashDifferences }},
	{FieldOtherControllables, "Otros controlables", func(y *YearlyData) *float64 { return &y.OtherControllables }},
	{FieldPAC, "P.A.C.", func(y *YearlyData) *float64 { return &y.PAC }},
	{FieldRent, "Renta", func(y *YearlyData) *float64 { return &y.Rent }},
	{FieldAdditionalRent, "Renta adicional", func(y *YearlyData) *float64 { return &y.AdditionalRent }},
	{FieldRoyalty, "Royalty", func(y *YearlyData) *float64 { return &y.Royalty }},
	{FieldOfficeLegal, "Oficina y legal", func(y *YearlyData) *float64 { return &y.OfficeLegal }},
	{FieldInsurance, "Seguros", func(y *YearlyData) *float64 { return &y.Insurance }},
	{FieldTaxesLicenses, "Tasas y licencias", func(y *YearlyData) *float64 { return &y.TaxesLicenses }},
	{FieldDepreciation, "Depreciaciones y amortizaciones", func(y *YearlyData) *float64 { return &y.Depreciation }},
	{FieldInterest, "Intereses", func(y *YearlyData) *float64 { return &y.Interest }},
	{FieldOtherNonControllable, "Otros no controlables", func(y *YearlyData) *float64 { return &y.OtherNonControllable }},
	{FieldSOI, "S.O.I.", func(y *YearlyData) *float64 { return &y.SOI }},
	{FieldDrawSalary, "Salario franquiciado", func(y *YearlyData) *float64 { return &y.DrawSalary }},
	{FieldGeneralExpenses, "Gastos generales", func(y *YearlyData) *float64 { return &y.GeneralExpenses }},
	{FieldLoanPayment, "Pago préstamo", func(y *YearlyData) *float64 { return &y.LoanPayment }},
	{FieldInvestmentOwnFunds, "Inversión fondos propios", func(y *YearlyData) *float64 { return &y.InvestmentOwnFunds }},
	{FieldCashFlow, "Cash flow", func(y *YearlyData) *float64 { return &y.CashFlow }},
}

// SpecFor returns the FieldSpec for f.
func SpecFor(f Field) (FieldSpec, bool) {
	for _, spec := range YearlyFields {
		if spec.Field == f {
			return spec, true
		}
	}
	return FieldSpec{}, false
}
