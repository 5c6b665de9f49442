package model

import (
	"encoding/json"
	"time"
)

const (
	OrderStatusPending   = "pendiente"
	OrderStatusConfirmed = "confirmado"
	OrderStatusCancelled = "cancelado"

	PaymentStatusPending  = "pendiente"
	PaymentStatusApproved = "aprobado"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Username         string     `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email            string     `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"size:128;not null" json:"-"`
	DNI              string     `gorm:"size:16;uniqueIndex;not null" json:"dni"`
	Admin            bool       `gorm:"not null;default:false" json:"admin"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	Phone            string     `gorm:"size:32" json:"telefono,omitempty"`
	Confirmed        bool       `gorm:"not null;default:false" json:"confirmacion"`
	ConfirmationCode *string    `gorm:"size:6" json:"-"`
	ShippingAddress  string     `gorm:"type:text" json:"direccionEnvio,omitempty"`
	BillingAddress   string     `gorm:"type:text" json:"direccionFacturacion,omitempty"`
	CreatedAt        time.Time  `json:"-"`
	UpdatedAt        time.Time  `json:"-"`
}

type Supplier struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"nombreProveedor"`
	Phone        string    `gorm:"size:32;not null" json:"telefonoProveedor"`
	DNI          string    `gorm:"size:16;not null" json:"dniProveedor"`
	Email        string    `gorm:"size:128" json:"emailProveedor,omitempty"`
	Address      string    `gorm:"size:256" json:"direccionProveedor,omitempty"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"fechaRegistro"`
	Active       bool      `gorm:"not null;default:true" json:"activo"`
}

type Brand struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"nombre"`
	Description string `gorm:"size:256" json:"descripcion,omitempty"`
	LogoURL     string `gorm:"size:256" json:"logoUrl,omitempty"`
}

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"nombre"`
	Description string `gorm:"size:256" json:"descripcion,omitempty"`
}

type Product struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"size:128;uniqueIndex;not null" json:"nombre"`
	Description     string          `gorm:"type:text" json:"descripcion,omitempty"`
	Price           float64         `gorm:"not null" json:"precio"`
	OriginalPrice   *float64        `json:"precioOriginal,omitempty"`
	MainImage       string          `gorm:"size:256" json:"imagenPrincipal,omitempty"`
	SecondaryImages string          `gorm:"type:text" json:"imagenesSecundarias,omitempty"` // comma separated
	SupplierID      uint            `gorm:"index;not null" json:"proveedorId"`
	Supplier        *Supplier       `json:"proveedor,omitempty"`
	BrandID         uint            `gorm:"index;not null" json:"marcaId"`
	Brand           *Brand          `json:"marca,omitempty"`
	CategoryID      uint            `gorm:"index;not null" json:"categoriaId"`
	Category        *Category       `json:"categoria,omitempty"`
	Stock           int             `gorm:"not null;default:0" json:"stock"`
	EditionLimit    *int            `json:"limiteEdicion,omitempty"`
	SerialStart     *int            `json:"numeroSerieInicio,omitempty"`
	SpecialFeatures json.RawMessage `gorm:"type:text" json:"caracteristicasEspeciales,omitempty"`
	ReleaseDate     *time.Time      `json:"fechaLanzamiento,omitempty"`
	Active          bool            `gorm:"not null;default:true" json:"activo"`
	Featured        bool            `gorm:"not null;default:false" json:"destacado"`
	CreatedAt       time.Time       `json:"-"`
	UpdatedAt       time.Time       `json:"-"`
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Number          string      `gorm:"size:64;uniqueIndex;not null" json:"numeroPedido"`
	TotalPrice      float64     `gorm:"not null" json:"precioTotal"`
	Status          string      `gorm:"size:16;index;not null;default:pendiente" json:"estado"` // pendiente, confirmado, cancelado
	UserID          uint        `gorm:"index;not null" json:"userId"`
	User            *User       `json:"usuario,omitempty"`
	ShippingAddress string      `gorm:"type:text" json:"direccionEnvio"`
	BillingAddress  string      `gorm:"type:text" json:"direccionFacturacion"`
	Notes           string      `gorm:"type:text" json:"notas,omitempty"`
	Lines           []OrderLine `gorm:"foreignKey:OrderID" json:"detalles,omitempty"`
	Payments        []Payment   `gorm:"foreignKey:OrderID" json:"pagos,omitempty"`
	CreatedAt       time.Time   `json:"-"`
	UpdatedAt       time.Time   `json:"-"`
}

type OrderLine struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"pedidoId"`
	ProductID uint     `gorm:"index;not null" json:"productoId"`
	Product   *Product `json:"producto,omitempty"`
	Quantity  int      `gorm:"not null" json:"cantidad"`
	UnitPrice float64  `gorm:"not null" json:"precioUnitario"` // captured at order time
	Subtotal  float64  `gorm:"not null" json:"subtotal"`
}

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// external gateway id; one row per (payment, order) pair when a payment
	// is split across several orders
	ExternalID string          `gorm:"size:64;uniqueIndex:idx_payment_order;not null" json:"idPago"`
	OrderID    uint            `gorm:"uniqueIndex:idx_payment_order;not null" json:"pedidoId"`
	Order      *Order          `json:"pedido,omitempty"`
	Amount     float64         `gorm:"not null" json:"monto"`
	Status     string          `gorm:"size:16;not null;default:pendiente" json:"estado"` // pendiente, aprobado
	Method     string          `gorm:"size:32;not null" json:"metodo"`
	PaidAt     *time.Time      `json:"fechaPago,omitempty"`
	UserID     uint            `gorm:"index;not null" json:"usuarioId"`
	TxData     json.RawMessage `gorm:"type:text" json:"datosTransaccion,omitempty"`
	CreatedAt  time.Time       `json:"-"`
}

type Review struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    uint     `gorm:"index;not null" json:"usuarioId"`
	User      *User    `json:"usuario,omitempty"`
	ProductID uint     `gorm:"index;not null" json:"productoId"`
	Product   *Product `json:"producto,omitempty"`
	Rating    int      `gorm:"not null" json:"calificacion"`
	Comment   string   `gorm:"type:text" json:"comentario,omitempty"`
	Approved  bool     `gorm:"not null;default:false" json:"aprobada"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"usuarioId"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"productoId"`
	Product   *Product  `json:"producto,omitempty"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"fechaAgregado"`
}
