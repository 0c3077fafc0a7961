package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartcoach/internal/config"
	"smartcoach/internal/middleware"
	"smartcoach/internal/models"
	"smartcoach/internal/notify"
	"smartcoach/internal/validation"
)

type passengerRegisterInput struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Gender          string `json:"gender" binding:"required"`
}

type staffRegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterPassenger is the public self-service signup. All field rules
// are evaluated and reported together; on success the welcome mail is
// sent synchronously but its failure never rolls the account back.
func RegisterPassenger(c *gin.Context) {
	var input passengerRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := validation.ValidateRegistration(
		input.Username, input.Email, input.Password, input.ConfirmPassword, input.Gender)

	// Uniqueness checks against the store
	var count int64
	config.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		errs.Add("username", "Username already exists.")
	}
	config.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		errs.Add("email", "Email already registered.")
	}

	if errs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     models.RolePassenger,
	}

	// User and profile go in together or not at all
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.PassengerProfile{UserID: user.ID, Gender: input.Gender}
		return tx.Create(&profile).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account: " + err.Error()})
		return
	}

	// The welcome mail may fail without affecting the created account;
	// the response carries the outcome so the frontend can mention it.
	emailSent := true
	if err := notify.Default.Send(notify.Welcome(user.Username, user.Email)); err != nil {
		emailSent = false
		logrus.WithError(err).WithField("user", user.Username).
			Warn("welcome mail delivery failed")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Registration successful!",
		"email_sent": emailSent,
		"user": gin.H{
			"ID":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// RegisterStaff creates a maintenance staff account. Admin-initiated,
// no profile and no welcome mail.
func RegisterStaff(c *gin.Context) {
	var input staffRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     models.RoleStaff,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create staff account: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Maintenance Staff added successfully.",
		"user": gin.H{
			"ID":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// LoginUser authenticates by username and issues a JWT. The error
// message distinguishes an unknown username from a wrong password.
func LoginUser(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Username does not exist."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password."})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"ID":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// LogoutUser acknowledges a logout. Tokens are stateless bearer
// tokens, so discarding happens client-side and there is nothing to
// revoke here.
func LogoutUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// isUniqueViolation recognises uniqueness failures from Postgres and
// from the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
