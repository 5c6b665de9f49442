package dto

import (
	"encoding/json"
	"time"
)

// ---- orders ----

type OrderItemRequest struct {
	ProductID uint `json:"productoId"`
	Quantity  int  `json:"cantidad"`
}

type CreateOrderRequest struct {
	UserID   uint               `json:"userId"`
	Products []OrderItemRequest `json:"productos"`
}

type OrderLineDetail struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"productoId"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precioUnitario"`
	Subtotal  float64 `json:"subtotal"`
}

type CreateOrderResponse struct {
	Message string            `json:"message"`
	Details []OrderLineDetail `json:"detalles"`
	OrderID uint              `json:"pedidoId"`
	Number  string            `json:"numeroPedido"`
	Total   float64           `json:"total"`
}

// ---- payments ----

type RegisterPaymentRequest struct {
	PaymentID string          `json:"paymentId"`
	OrderIDs  []uint          `json:"orderIds"`
	Status    string          `json:"status"`
	Amount    float64         `json:"amount"`
	TxData    json.RawMessage `json:"datosTransaccion,omitempty"`
}

type OrderPaymentStatus struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Number string `json:"numeroPedido"`
}

type RegisterPaymentResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Orders  []OrderPaymentStatus `json:"orders"`
}

// ---- auth ----

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	DNI      string `json:"dni"`
	Phone    string `json:"telefono"`
	Birthday string `json:"birthday"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type ConfirmRequest struct {
	UserID uint   `json:"userId"`
	Code   string `json:"code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ---- catalog ----

type ProductRequest struct {
	Name            string          `json:"nombre"`
	Description     string          `json:"descripcion"`
	Price           float64         `json:"precio"`
	OriginalPrice   *float64        `json:"precioOriginal"`
	MainImage       string          `json:"imagenPrincipal"`
	SecondaryImages []string        `json:"imagenesSecundarias"`
	SupplierID      uint            `json:"proveedorId"`
	BrandID         uint            `json:"marcaId"`
	CategoryID      uint            `json:"categoriaId"`
	Stock           *int            `json:"stock"`
	EditionLimit    *int            `json:"limiteEdicion"`
	SerialStart     *int            `json:"numeroSerieInicio"`
	SpecialFeatures json.RawMessage `json:"caracteristicasEspeciales"`
	ReleaseDate     *time.Time      `json:"fechaLanzamiento"`
	Active          *bool           `json:"activo"`
	Featured        *bool           `json:"destacado"`
}

type BrandRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	LogoURL     string `json:"logoUrl"`
}

type CategoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

type SupplierRequest struct {
	Name    string `json:"nombreProveedor"`
	Phone   string `json:"telefonoProveedor"`
	DNI     string `json:"dniProveedor"`
	Email   string `json:"emailProveedor"`
	Address string `json:"direccionProveedor"`
	Active  *bool  `json:"activo"`
}

// ---- users ----

type UpdateUserRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"telefono"`
	ShippingAddress string `json:"direccionEnvio"`
	BillingAddress  string `json:"direccionFacturacion"`
}

type SetAdminRequest struct {
	Admin bool `json:"admin"`
}

// ---- reviews / wish list ----

type ReviewRequest struct {
	UserID    uint   `json:"usuarioId"`
	ProductID uint   `json:"productoId"`
	Rating    int    `json:"calificacion"`
	Comment   string `json:"comentario"`
}

type WishlistRequest struct {
	UserID    uint `json:"usuarioId"`
	ProductID uint `json:"productoId"`
}
