package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inmobiliaria-ica/api-go/models"
	"github.com/inmobiliaria-ica/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserController covers the role and user admin resources. Self-service
// registration lives in AuthController; this is the seeded/admin path, which
// hashes passwords with the same scheme.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Roles

func (uc *UserController) ListRoles(c *gin.Context) {
	var roles []models.Role
	response, err := utils.Paginate(c, uc.DB.Model(&models.Role{}).Order("name"), &roles)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (uc *UserController) GetRole(c *gin.Context) {
	var role models.Role
	if err := uc.DB.First(&role, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}
	c.JSON(http.StatusOK, role)
}

func (uc *UserController) CreateRole(c *gin.Context) {
	var input struct {
		Name string `json:"nombre_rol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.Role{Name: input.Name}
	if err := uc.DB.Create(&role).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (uc *UserController) UpdateRole(c *gin.Context) {
	var role models.Role
	if err := uc.DB.First(&role, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	var input struct {
		Name string `json:"nombre_rol" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.DB.Model(&role).Update("name", input.Name).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role already exists"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (uc *UserController) DeleteRole(c *gin.Context) {
	var role models.Role
	if err := uc.DB.First(&role, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("role_id = ?", role.ID).
			Update("role_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&role).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Users

func (uc *UserController) ListUsers(c *gin.Context) {
	var users []models.User
	response, err := utils.Paginate(c, uc.DB.Model(&models.User{}).Preload("Role"), &users)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (uc *UserController) GetUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.Preload("Role").First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var input struct {
		FirstNames string  `json:"nombres" binding:"required"`
		LastNames  string  `json:"apellidos" binding:"required"`
		Email      string  `json:"email" binding:"required,email"`
		Password   string  `json:"password" binding:"required,min=6"`
		Phone      *string `json:"telefono"`
		NationalID *string `json:"cedula"`
		RoleID     *uint   `json:"rol_id"`
		Active     *bool   `json:"activo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, err)
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user := models.User{
		FirstNames:   input.FirstNames,
		LastNames:    input.LastNames,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Phone:        input.Phone,
		NationalID:   input.NationalID,
		RoleID:       input.RoleID,
		Active:       active,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or cedula already registered"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input struct {
		FirstNames *string `json:"nombres"`
		LastNames  *string `json:"apellidos"`
		Email      *string `json:"email"`
		Password   *string `json:"password"`
		Phone      *string `json:"telefono"`
		NationalID *string `json:"cedula"`
		RoleID     *uint   `json:"rol_id"`
		Active     *bool   `json:"activo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.FirstNames != nil {
		updates["first_names"] = *input.FirstNames
	}
	if input.LastNames != nil {
		updates["last_names"] = *input.LastNames
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			internalError(c, err)
			return
		}
		updates["password_hash"] = string(hashedPassword)
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.NationalID != nil {
		updates["national_id"] = *input.NationalID
	}
	if input.RoleID != nil {
		updates["role_id"] = *input.RoleID
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or cedula already registered"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser cascades into the user's owned properties but only nulls the
// user's other references (moderator, buyer/seller, appointment parties).
func (uc *UserController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		var ownedIDs []uint
		if err := tx.Model(&models.Property{}).Where("owner_id = ?", user.ID).
			Pluck("id", &ownedIDs).Error; err != nil {
			return err
		}
		for _, propertyID := range ownedIDs {
			if err := deletePropertyTree(tx, propertyID); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Property{}).Where("moderator_id = ?", user.ID).
			Update("moderator_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Operation{}).Where("seller_id = ?", user.ID).
			Update("seller_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Operation{}).Where("buyer_id = ?", user.ID).
			Update("buyer_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Appointment{}).Where("interested_id = ?", user.ID).
			Update("interested_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Appointment{}).Where("owner_id = ?", user.ID).
			Update("owner_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
