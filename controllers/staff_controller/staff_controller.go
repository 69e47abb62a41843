package staff_controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunkmr/hoteldesk/logger"
	"github.com/arjunkmr/hoteldesk/models/staff_models"
	"github.com/arjunkmr/hoteldesk/utils"
)

const accessTokenTTL = 12 * time.Hour

// StaffController handles front-desk staff registration and login.
type StaffController struct {
	DB *pgxpool.Pool
}

// NewStaffController creates a new instance of StaffController.
func NewStaffController(db *pgxpool.Pool) *StaffController {
	return &StaffController{DB: db}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a staff account.
func (sc *StaffController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := staff_models.GetStaffByEmail(c.Request.Context(), sc.DB, email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	} else if !errors.Is(err, staff_models.ErrStaffNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check account"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	staff, err := staff_models.NewStaff(req.Name, email, hash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	created, err := staff_models.CreateStaff(c.Request.Context(), sc.DB, staff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.ID, "name": created.Name, "email": created.Email})
}

// Login verifies credentials and hands out a signed access token.
func (sc *StaffController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	staff, err := staff_models.GetStaffByEmail(c.Request.Context(), sc.DB, email)
	if err != nil {
		if errors.Is(err, staff_models.ErrStaffNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if !utils.VerifyPassword(req.Password, staff.PasswordHash) {
		logger.WarnLogger.Warnf("Failed login attempt for %s", email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": staff.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	})

	signed, err := token.SignedString(utils.GetJWTSecret())
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to sign access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"expires_in":   int(accessTokenTTL.Seconds()),
		"staff":        gin.H{"id": staff.ID, "name": staff.Name, "email": staff.Email},
	})
}

// Me returns the profile of the logged-in staff member.
func (sc *StaffController) Me(c *gin.Context) {
	staffID, err := utils.GetStaffIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	staff, err := staff_models.GetStaffByID(c.Request.Context(), sc.DB, staffID)
	if err != nil {
		if errors.Is(err, staff_models.ErrStaffNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
		return
	}

	c.JSON(http.StatusOK, staff)
}
