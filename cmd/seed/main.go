package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Cdruetta/GCinsumos-page-back/internal/config"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/category"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
	"github.com/Cdruetta/GCinsumos-page-back/internal/repository/mysql"
)

// 演示目录数据，价格单位为分
var products = []product.Product{
	{Name: "Monitor LED 27\"", Category: "Monitores", Price: 29999, Image: "/monitor-led-27-pulgadas.jpg", Description: "Monitor 4K ultra clear para gaming y diseño", Stock: 15},
	{Name: "Teclado Mecánico RGB", Category: "Periféricos", Price: 8999, Image: "/teclado-mecanico-rgb.jpg", Description: "Teclado mecánico con switches Cherry MX", Stock: 32},
	{Name: "Mouse Gaming Pro", Category: "Periféricos", Price: 4999, Image: "/mouse-gaming-profesional.jpg", Description: "Mouse óptico 16000 DPI para gaming competitivo", Stock: 48},
	{Name: "Laptop Gaming 15\"", Category: "Laptops", Price: 89999, Image: "/laptop-gaming-15-pulgadas.jpg", Description: "RTX 4070, i7, 16GB RAM, SSD 512GB", Stock: 8},
	{Name: "Webcam 1080p HD", Category: "Accesorios", Price: 3499, Image: "/webcam-1080p-hd.jpg", Description: "Webcam con micrófono incorporado para streaming", Stock: 25},
	{Name: "SSD NVMe 1TB", Category: "Almacenamiento", Price: 12999, Image: "/ssd-nvme-1tb.jpg", Description: "SSD NVMe Gen 4 de alta velocidad", Stock: 20},
	{Name: "RAM DDR5 32GB", Category: "Memoria", Price: 18999, Image: "/ram-ddr5-32gb.jpg", Description: "Memoria RAM DDR5 para máximo rendimiento", Stock: 12},
	{Name: "Fuente ATX 850W", Category: "Componentes", Price: 9999, Image: "/fuente-poder-atx-850w.jpg", Description: "Fuente de poder 850W certificada 80+ Gold", Stock: 18},
	{Name: "Auriculares Bluetooth", Category: "Audio", Price: 5999, Image: "/auriculares-bluetooth-premium.jpg", Description: "Auriculares inalámbricos con cancelación de ruido", Stock: 35},
	{Name: "Hub USB-C 7 en 1", Category: "Accesorios", Price: 2499, Image: "/hub-usb-c-7-puertos.jpg", Description: "Hub multifunción con 7 puertos USB-C", Stock: 40},
}

func main() {
	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := mysql.Init(&cfg.MySQL)
	ctx := context.Background()

	fmt.Println("seeding database...")

	// 清空现有数据（先删明细再删订单和商品，保证外键顺序）
	if err := db.WithContext(ctx).Where("1 = 1").Delete(&order.Item{}).Error; err != nil {
		log.Fatalf("failed to clear order items: %v", err)
	}
	if err := db.WithContext(ctx).Where("1 = 1").Delete(&order.Order{}).Error; err != nil {
		log.Fatalf("failed to clear orders: %v", err)
	}
	if err := db.WithContext(ctx).Where("1 = 1").Delete(&product.Product{}).Error; err != nil {
		log.Fatalf("failed to clear products: %v", err)
	}
	if err := db.WithContext(ctx).Where("1 = 1").Delete(&category.Category{}).Error; err != nil {
		log.Fatalf("failed to clear categories: %v", err)
	}

	productRepo := mysql.NewProductRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)

	seen := map[string]bool{}
	for i := range products {
		p := products[i]
		if err := productRepo.Create(ctx, &p); err != nil {
			log.Fatalf("failed to create product %q: %v", p.Name, err)
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			if err := categoryRepo.Create(ctx, &category.Category{Name: p.Category}); err != nil {
				log.Fatalf("failed to create category %q: %v", p.Category, err)
			}
		}
	}

	fmt.Printf("created %d products, %d categories\n", len(products), len(seen))
	fmt.Println("seed completed")
}
