package controllers

import (
	"net/http"

	"conecta/models"

	"github.com/gin-gonic/gin"
)

type PurchaseRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

// GET /api/products?categoria=&destaque=true
// Os nomes dos parâmetros seguem o front legado.
func GetProducts(c *gin.Context) {
	category := c.Query("categoria")
	featuredOnly := c.Query("destaque") == "true"

	svc, ok := productService(c)
	if !ok {
		return
	}

	products, err := svc.List(category, featuredOnly)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Produtos listados com sucesso", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GET /api/products/categories
func GetProductCategories(c *gin.Context) {
	RespondOK(c, "Categorias listadas", gin.H{"categories": models.ProductCategories()})
}

// GET /api/products/:id
func GetProductByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := productService(c)
	if !ok {
		return
	}

	product, err := svc.FindByID(id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Produto encontrado", gin.H{"product": product})
}

// POST /api/products/:id/purchase (autenticado)
func PurchaseProduct(c *gin.Context) {
	if _, ok := GetAccountLogged(c); !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	req := PurchaseRequest{Quantity: 1}
	if c.Request.ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
	}

	svc, ok := productService(c)
	if !ok {
		return
	}

	if err := svc.Purchase(id, req.Quantity); err != nil {
		RespondServiceError(c, err)
		return
	}

	product, err := svc.FindByID(id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Compra realizada com sucesso", gin.H{"product": product})
}
