package accounting

import (
	"github.com/clipsburger/sales-dashboard-api/internal/domain"
	"github.com/clipsburger/sales-dashboard-api/pkg/utils"
)

// Calculator monta o DRE simplificado da loja sobre um conjunto de vendas
type Calculator interface {
	Compute(sales []domain.NormalizedSale, params *domain.FinancialParams) domain.FinancialResult
}

type Service struct{}

func NewService() Calculator {
	return &Service{}
}

// Compute calcula receitas, custos e margens do período. O faturamento
// tributável é a soma de cartão e pix; sobre ele incide a alíquota do
// Simples. O lucro líquido segue a definição usada pela loja:
// faturamento bruto menos faturamento tributável.
//
// Sem vendas no período o resultado zera, exceto o custo da contadora,
// que é fixo e aparece igual ao informado.
func (s *Service) Compute(sales []domain.NormalizedSale, params *domain.FinancialParams) domain.FinancialResult {
	salario, contadora, fornecedoresPct := params.Resolve()

	result := domain.FinancialResult{
		CustoContadora: utils.RoundWithTwoDecimalPlace(contadora),
	}

	if len(sales) == 0 {
		return result
	}

	for _, sale := range sales {
		result.FaturamentoBruto += sale.Total
		result.FaturamentoTributavel += sale.Cartao + sale.Pix
		result.FaturamentoNaoTributavel += sale.Dinheiro
	}

	result.ImpostoSimples = result.FaturamentoTributavel * domain.AliquotaSimples
	result.CustoFuncionario = salario * domain.EncargoFuncionario
	result.CustoFornecedores = result.FaturamentoBruto * (fornecedoresPct / 100)
	result.TotalCustos = result.ImpostoSimples + result.CustoFuncionario + contadora + result.CustoFornecedores

	result.LucroBruto = result.FaturamentoBruto - result.TotalCustos
	result.LucroLiquido = result.FaturamentoBruto - result.FaturamentoTributavel

	if result.FaturamentoBruto > 0 {
		result.MargemBruta = (result.LucroBruto / result.FaturamentoBruto) * 100
		result.MargemLiquida = (result.LucroLiquido / result.FaturamentoBruto) * 100
	}

	return roundResult(result)
}

func roundResult(result domain.FinancialResult) domain.FinancialResult {
	result.FaturamentoBruto = utils.RoundWithTwoDecimalPlace(result.FaturamentoBruto)
	result.FaturamentoTributavel = utils.RoundWithTwoDecimalPlace(result.FaturamentoTributavel)
	result.FaturamentoNaoTributavel = utils.RoundWithTwoDecimalPlace(result.FaturamentoNaoTributavel)
	result.ImpostoSimples = utils.RoundWithTwoDecimalPlace(result.ImpostoSimples)
	result.CustoFuncionario = utils.RoundWithTwoDecimalPlace(result.CustoFuncionario)
	result.CustoContadora = utils.RoundWithTwoDecimalPlace(result.CustoContadora)
	result.CustoFornecedores = utils.RoundWithTwoDecimalPlace(result.CustoFornecedores)
	result.TotalCustos = utils.RoundWithTwoDecimalPlace(result.TotalCustos)
	result.LucroBruto = utils.RoundWithTwoDecimalPlace(result.LucroBruto)
	result.LucroLiquido = utils.RoundWithTwoDecimalPlace(result.LucroLiquido)
	result.MargemBruta = utils.RoundWithTwoDecimalPlace(result.MargemBruta)
	result.MargemLiquida = utils.RoundWithTwoDecimalPlace(result.MargemLiquida)

	return result
}
