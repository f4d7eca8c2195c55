package models

import "time"

// User модель пользователя. Пароль хранится только в виде bcrypt-хеша
// и никогда не сериализуется в ответах API.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `gorm:"index:idx_users_username,unique;size:64" json:"username"`
	Email     string    `gorm:"index:idx_users_email,unique;size:255" json:"email"`
	PhoneNo   string    `gorm:"size:32" json:"phoneno,omitempty"`
	Password  string    `gorm:"size:72" json:"-"`
}
