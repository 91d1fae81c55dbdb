package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tablegames_manager/config"
	"tablegames_manager/database"
	"tablegames_manager/model"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where(&model.Customer{Email: e}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["customerId"] = tokenClaim.CustomerId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["customerId"] = tokenClaim.CustomerId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	return token, err
}

// GetInfoCustomerFromToken extracts the claim the Protected middleware
// stored on the context.
func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}
	customerId, ok := claims["customerId"].(float64)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return model.TokenClaim{
		CustomerId: uint(customerId),
		Email:      email,
		Role:       role,
	}, nil
}

// CurrentCustomer loads the active customer row behind the request token.
func CurrentCustomer(c *fiber.Ctx) (*model.Customer, error) {
	claim, err := GetInfoCustomerFromToken(c)
	if err != nil {
		return nil, err
	}
	var customer model.Customer
	if err := database.DB.First(&customer, "id = ? AND is_active = true", claim.CustomerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}
