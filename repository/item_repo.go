package repository

import "bookingtrack/models"

type ItemRepository interface {
	CreateItem(item *models.Item) error
	GetItems() ([]*models.Item, error)
	GetItemByID(id int64) (*models.Item, error)
	UpdateItem(item *models.Item) error
	DeleteItem(id int64) error
}
