package seed

import (
	"go-product-catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// sampleProducts is the fixed catalog inserted into an empty database.
// ext_id carries the product's id from the legacy catalog export.
var sampleProducts = []entity.Product{
	{ExtID: int64Ptr(1), Name: strPtr("Classic White T-Shirt"), Category: strPtr("tshirts"), Price: pricePtr("19.99"), Image: strPtr("/images/products/classic-white-tshirt.jpg"), Stock: 50},
	{ExtID: int64Ptr(2), Name: strPtr("Cotton Polo Shirt"), Category: strPtr("tshirts"), Price: pricePtr("29.99"), Image: strPtr("/images/products/cotton-polo-shirt.jpg"), Stock: 35},
	{ExtID: int64Ptr(3), Name: strPtr("Graphic Print T-Shirt"), Category: strPtr("tshirts"), Price: pricePtr("22.50"), Image: strPtr("/images/products/graphic-print-tshirt.jpg"), Stock: 40},
	{ExtID: int64Ptr(4), Name: strPtr("Striped Long Sleeve Tee"), Category: strPtr("tshirts"), Price: pricePtr("27.99"), Image: strPtr("/images/products/striped-long-sleeve-tee.jpg"), Stock: 25},
	{ExtID: int64Ptr(5), Name: strPtr("Vintage Denim Jacket"), Category: strPtr("jackets"), Price: pricePtr("89.99"), Image: strPtr("/images/products/vintage-denim-jacket.jpg"), Stock: 15},
	{ExtID: int64Ptr(6), Name: strPtr("Hooded Sweatshirt"), Category: strPtr("hoodies"), Price: pricePtr("44.99"), Image: strPtr("/images/products/hooded-sweatshirt.jpg"), Stock: 30},
	{ExtID: int64Ptr(7), Name: strPtr("Slim Fit Chinos"), Category: strPtr("pants"), Price: pricePtr("49.99"), Image: strPtr("/images/products/slim-fit-chinos.jpg"), Stock: 20},
	{ExtID: int64Ptr(8), Name: strPtr("Running Sneakers"), Category: strPtr("shoes"), Price: pricePtr("79.99"), Image: strPtr("/images/products/running-sneakers.jpg"), Stock: 18},
	{ExtID: int64Ptr(9), Name: strPtr("Canvas High-Tops"), Category: strPtr("shoes"), Price: pricePtr("59.99"), Image: strPtr("/images/products/canvas-high-tops.jpg"), Stock: 22},
	{ExtID: int64Ptr(10), Name: strPtr("Leather Belt"), Category: strPtr("accessories"), Price: pricePtr("24.99"), Image: strPtr("/images/products/leather-belt.jpg"), Stock: 45},
	{ExtID: int64Ptr(11), Name: strPtr("Wool Beanie"), Category: strPtr("accessories"), Price: pricePtr("14.99"), Image: strPtr("/images/products/wool-beanie.jpg"), Stock: 60},
	{ExtID: int64Ptr(12), Name: strPtr("Leather Wallet"), Category: strPtr("accessories"), Price: pricePtr("34.99"), Image: strPtr("/images/products/leather-wallet.jpg"), Stock: 28},
}
