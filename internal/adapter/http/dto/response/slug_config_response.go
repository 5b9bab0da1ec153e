package response

import (
	"datebook_funnel/internal/domain/entities"
)

type SlugConfigResponse struct {
	Success          bool    `json:"success"`
	Valor            float64 `json:"valor"`
	Destinatario     string  `json:"destinatario"`
	Redirect         string  `json:"redirect,omitempty"`
	DescricaoProduto string  `json:"descricaoProduto"`
}

func FromSlugConfig(cfg entities.SlugConfig) SlugConfigResponse {
	return SlugConfigResponse{
		Success:          true,
		Valor:            cfg.Amount,
		Destinatario:     cfg.RecipientName,
		Redirect:         cfg.RedirectURL,
		DescricaoProduto: cfg.ProductDescription,
	}
}
