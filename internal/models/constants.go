package models

// Built-in profile names
const (
	ProfilePersonal = "personal"
	ProfileBusiness = "business"
)

// Personal profile categories
const (
	CategoryFood          = "Alimentação"
	CategoryTransport     = "Transporte"
	CategoryHousing       = "Moradia"
	CategorySubscriptions = "Assinaturas"
	CategoryHealth        = "Saúde"
	CategoryLeisure       = "Lazer"
	CategoryIncome        = "Receitas"
	CategoryOther         = "Outros"
)

// Business profile categories
const (
	CategoryTaxes      = "Impostos"
	CategoryFixedCosts = "Custos Fixos"
	CategorySuppliers  = "Fornecedores e Insumos"
	CategoryOperations = "Operacional e Marketing"
	CategoryFinancial  = "Custos Financeiros"
	CategorySales      = "Vendas e Receitas"
	CategoryOtherCosts = "Outros Custos"
)

// Required statement columns
const (
	ColumnDate        = "Data"
	ColumnDescription = "Descricao_Transacao"
	ColumnAmount      = "Valor"
)

// Balance status labels shown next to the balance KPI
const (
	BalanceStatusSurplus = "Sobra"
	BalanceStatusDeficit = "Déficit"
	BalanceStatusEven    = "Equilíbrio"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
