package response

import (
	"testing"

	"datebook_funnel/internal/domain/entities"
)

func TestFromRegistration(t *testing.T) {
	reg := entities.Registration{
		InternalCustomerID: "cust-1",
		GatewayCustomerID:  "cus_abc",
		RedirectURL:        "https://app.example/bem-vindo",
	}

	res := FromRegistration(reg)
	if !res.Success {
		t.Fatalf("expected success: %+v", res)
	}
	if res.CustomerID != "cust-1" || res.AsaasCustomerID != "cus_abc" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Redirect != reg.RedirectURL {
		t.Fatalf("unexpected redirect: %s", res.Redirect)
	}
}

func TestFromSlugConfig(t *testing.T) {
	cfg := entities.SlugConfig{
		Slug:               "datebook",
		RecipientName:      "Datebook Agendamentos",
		ProductDescription: "Assinatura mensal",
		Amount:             49.90,
		RedirectURL:        "https://app.example/obrigado",
	}

	res := FromSlugConfig(cfg)
	if !res.Success || res.Valor != 49.90 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Destinatario != cfg.RecipientName || res.DescricaoProduto != cfg.ProductDescription {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Redirect != cfg.RedirectURL {
		t.Fatalf("unexpected redirect: %s", res.Redirect)
	}
}
