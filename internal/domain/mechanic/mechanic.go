package mechanic

import (
	"fmt"
	"time"
)

type Mechanic struct {
	id        uint
	name      string
	email     string
	phone     string
	salary    float64
	createdAt time.Time
	updatedAt time.Time
}

func NewMechanic(name, email, phone string, salary float64) (*Mechanic, error) {
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
	if salary < 0 {
		return nil, fmt.Errorf("salary cannot be negative")
	}

	now := time.Now()
	return &Mechanic{
		name:      name,
		email:     email,
		phone:     phone,
		salary:    salary,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMechanic(
	id uint,
	name, email, phone string,
	salary float64,
	createdAt, updatedAt time.Time,
) (*Mechanic, error) {
	if id == 0 {
		return nil, fmt.Errorf("mechanic ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &Mechanic{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		salary:    salary,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Mechanic) ID() uint {
	return m.id
}

func (m *Mechanic) Name() string {
	return m.name
}

func (m *Mechanic) Email() string {
	return m.email
}

func (m *Mechanic) Phone() string {
	return m.phone
}

func (m *Mechanic) Salary() float64 {
	return m.salary
}

func (m *Mechanic) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Mechanic) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Mechanic) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("mechanic ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("mechanic ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Mechanic) UpdateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	m.name = name
	m.updatedAt = time.Now()
	return nil
}

func (m *Mechanic) UpdateEmail(email string) error {
	if len(email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}
	m.email = email
	m.updatedAt = time.Now()
	return nil
}

func (m *Mechanic) UpdatePhone(phone string) error {
	if len(phone) == 0 {
		return fmt.Errorf("phone cannot be empty")
	}
	m.phone = phone
	m.updatedAt = time.Now()
	return nil
}

func (m *Mechanic) UpdateSalary(salary float64) error {
	if salary < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	m.salary = salary
	m.updatedAt = time.Now()
	return nil
}
