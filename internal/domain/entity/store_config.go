package entity

// Temas de la interfaz.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// StoreConfig configuración de la tienda (singleton). Se persiste en un key-value externo.
type StoreConfig struct {
	Name              string `json:"name"`
	Logo              string `json:"logo,omitempty"`
	Theme             string `json:"theme"`
	Currency          string `json:"currency"`
	LowStockAlert     bool   `json:"lowStockAlert"`
	LowStockThreshold int    `json:"lowStockThreshold"`
}

// DefaultStoreConfig configuración usada cuando no hay nada persistido o el payload es inválido.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Name:              "CS Nutri",
		Theme:             ThemeLight,
		Currency:          "BRL",
		LowStockAlert:     true,
		LowStockThreshold: 5,
	}
}

// StoreConfigPatch actualización parcial (merge superficial): solo se aplican los campos no nil.
type StoreConfigPatch struct {
	Name              *string `json:"name"`
	Logo              *string `json:"logo"`
	Theme             *string `json:"theme"`
	Currency          *string `json:"currency"`
	LowStockAlert     *bool   `json:"lowStockAlert"`
	LowStockThreshold *int    `json:"lowStockThreshold"`
}

// Apply devuelve una copia de c con el patch aplicado.
func (c StoreConfig) Apply(p StoreConfigPatch) StoreConfig {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Logo != nil {
		c.Logo = *p.Logo
	}
	if p.Theme != nil {
		c.Theme = *p.Theme
	}
	if p.Currency != nil {
		c.Currency = *p.Currency
	}
	if p.LowStockAlert != nil {
		c.LowStockAlert = *p.LowStockAlert
	}
	if p.LowStockThreshold != nil {
		c.LowStockThreshold = *p.LowStockThreshold
	}
	return c
}

// ToggledTheme alterna light ↔ dark. Un tema desconocido pasa a dark.
func (c StoreConfig) ToggledTheme() string {
	if c.Theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid verifica tema y nombre.
func (c StoreConfig) Valid() bool {
	return c.Name != "" && (c.Theme == ThemeLight || c.Theme == ThemeDark) && c.LowStockThreshold >= 0
}
