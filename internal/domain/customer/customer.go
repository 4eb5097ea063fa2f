package customer

import (
	"fmt"
	"time"
)

type Customer struct {
	id           uint
	name         string
	email        string
	phone        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCustomer(name, email, phone, passwordHash string) (*Customer, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &Customer{
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCustomer(
	id uint,
	name, email, phone, passwordHash string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &Customer{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Customer) ID() uint {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) UpdateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) UpdateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}
	c.email = email
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) UpdatePhone(phone string) error {
	if len(phone) == 0 {
		return fmt.Errorf("phone cannot be empty")
	}
	c.phone = phone
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	c.passwordHash = hash
	c.updatedAt = time.Now()
	return nil
}
