package domain

// Parâmetros padrão da simulação financeira, os mesmos valores sugeridos
// pela interface quando o usuário não informa nada.
const (
	DefaultSalarioMinimo   = 1550.0
	DefaultContadora       = 316.0
	DefaultFornecedoresPct = 30.0
)

// Alíquota do Simples Nacional aplicada sobre o faturamento tributável
// e encargo total sobre o salário do funcionário.
const (
	AliquotaSimples    = 0.06
	EncargoFuncionario = 1.55
)

// FinancialParams são os parâmetros externos do cálculo financeiro.
// Campos nulos são substituídos pelos valores padrão.
type FinancialParams struct {
	SalarioMinimo   *float64 `json:"salario_minimo,omitempty"`
	Contadora       *float64 `json:"contadora,omitempty"`
	FornecedoresPct *float64 `json:"fornecedores_pct,omitempty"`
}

// Resolve aplica os valores padrão aos campos não informados
func (p *FinancialParams) Resolve() (salario, contadora, fornecedoresPct float64) {
	salario = DefaultSalarioMinimo
	contadora = DefaultContadora
	fornecedoresPct = DefaultFornecedoresPct

	if p == nil {
		return salario, contadora, fornecedoresPct
	}
	if p.SalarioMinimo != nil {
		salario = *p.SalarioMinimo
	}
	if p.Contadora != nil {
		contadora = *p.Contadora
	}
	if p.FornecedoresPct != nil {
		fornecedoresPct = *p.FornecedoresPct
	}
	return salario, contadora, fornecedoresPct
}

// FinancialResult é o DRE simplificado calculado sobre um conjunto de vendas.
//
// LucroLiquido segue a definição usada pela loja: faturamento bruto menos
// faturamento tributável, ou seja, a parcela em dinheiro que não entra no
// regime tributário. Não é o lucro líquido contábil convencional.
type FinancialResult struct {
	FaturamentoBruto         float64 `json:"faturamento_bruto"`
	FaturamentoTributavel    float64 `json:"faturamento_tributavel"`
	FaturamentoNaoTributavel float64 `json:"faturamento_nao_tributavel"`
	ImpostoSimples           float64 `json:"imposto_simples"`
	CustoFuncionario         float64 `json:"custo_funcionario"`
	CustoContadora           float64 `json:"custo_contadora"`
	CustoFornecedores        float64 `json:"custo_fornecedores"`
	TotalCustos              float64 `json:"total_custos"`
	LucroBruto               float64 `json:"lucro_bruto"`
	LucroLiquido             float64 `json:"lucro_liquido"`
	MargemBruta              float64 `json:"margem_bruta"`
	MargemLiquida            float64 `json:"margem_liquida"`
}
