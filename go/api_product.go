package commerceserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productdomain "github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
	productports "github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
)

// ProductAPI wires HTTP transport with the products bounded context service.
type ProductAPI struct {
	service productports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service productports.Service) ProductAPI {
	return ProductAPI{service: service}
}

func fromDomainProduct(product *productdomain.Product) Product {
	return Product{
		Id:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
	}
}

func toDomainProduct(payload Product) *productdomain.Product {
	return &productdomain.Product{
		ID:          payload.Id,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Stock:       payload.Stock,
	}
}

func fromDomainProductList(products []*productdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, fromDomainProduct(product))
	}
	return result
}

// Get /api/v1/products/list
// List all products
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProductList(products))
}

// Post /api/v1/products/create
// Create a product
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.Create(c.Request.Context(), toDomainProduct(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(saved))
}

// Get /api/v1/products/:productId
// Get product by ID
func (api *ProductAPI) GetProductById(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

// Put /api/v1/products/update/:productId
// Update an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var payload Product
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, toDomainProduct(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(updated))
}

// Delete /api/v1/products/delete/:productId
// Delete a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
