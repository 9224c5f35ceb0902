package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	customerrepo "github.com/amirasaad/ledger/pkg/repository/customer"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository bound to db.
func NewCustomerRepository(db *gorm.DB) customerrepo.Repository {
	return &customerRepository{db: db}
}

// FindByIdentity implements customer.Repository.
func (r *customerRepository) FindByIdentity(
	ctx context.Context,
	name, identification string,
) (*dto.CustomerRead, error) {
	var c Customer
	err := r.db.WithContext(ctx).
		Where("name = ? AND identification = ?", name, identification).
		First(&c).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCustomerModelToDTO(&c), nil
}

// Create implements customer.Repository.
func (r *customerRepository) Create(ctx context.Context, create dto.CustomerCreate) (*dto.CustomerRead, error) {
	c := Customer{
		Name:           create.Name,
		Identification: create.Identification,
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCustomerModelToDTO(&c), nil
}

// Get implements customer.Repository.
func (r *customerRepository) Get(ctx context.Context, id uint) (*dto.CustomerRead, error) {
	var c Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCustomerModelToDTO(&c), nil
}

// List implements customer.Repository.
func (r *customerRepository) List(ctx context.Context) ([]*dto.CustomerRead, error) {
	var cs []Customer
	if err := r.db.WithContext(ctx).Order("id").Find(&cs).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.CustomerRead, 0, len(cs))
	for i := range cs {
		result = append(result, mapCustomerModelToDTO(&cs[i]))
	}
	return result, nil
}

func mapCustomerModelToDTO(c *Customer) *dto.CustomerRead {
	return &dto.CustomerRead{
		ID:             c.ID,
		Name:           c.Name,
		Identification: c.Identification,
	}
}
