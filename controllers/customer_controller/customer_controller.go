package customer_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/customer_models"
)

// CustomerController holds dependencies for customer CRUD operations.
type CustomerController struct {
	DB *pgxpool.Pool
}

// NewCustomerController creates a new instance of CustomerController.
func NewCustomerController(db *pgxpool.Pool) *CustomerController {
	return &CustomerController{DB: db}
}

type customerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	IDProof string `json:"id_proof"`
}

// CreateCustomer registers a new guest.
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := customer_models.NewCustomer(req.Name, req.Phone, req.Email, req.Address, req.IDProof)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to build customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	created, err := customer_models.CreateCustomer(c.Request.Context(), cc.DB, customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetCustomers lists every registered guest.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := customer_models.GetAllCustomers(c.Request.Context(), cc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer fetches one guest by ID.
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	customer, err := customer_models.GetCustomerByID(c.Request.Context(), cc.DB, id)
	if err != nil {
		if errors.Is(err, customer_models.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer rewrites a guest's details.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := &customer_models.Customer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		IDProof: req.IDProof,
	}

	if err := customer_models.UpdateCustomer(c.Request.Context(), cc.DB, customer); err != nil {
		if errors.Is(err, customer_models.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// DeleteCustomer removes a guest record.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	if err := customer_models.DeleteCustomer(c.Request.Context(), cc.DB, id); err != nil {
		if errors.Is(err, customer_models.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
