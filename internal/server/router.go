package server

import (
	"errors"
	"strconv"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"

	"github.com/Cdruetta/GCinsumos-page-back/internal/cache"
	"github.com/Cdruetta/GCinsumos-page-back/internal/config"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/category"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/order"
	"github.com/Cdruetta/GCinsumos-page-back/internal/datamodels/product"
	"github.com/Cdruetta/GCinsumos-page-back/internal/events"
	"github.com/Cdruetta/GCinsumos-page-back/internal/infra/mq"
	"github.com/Cdruetta/GCinsumos-page-back/internal/infra/redis"
	"github.com/Cdruetta/GCinsumos-page-back/internal/middleware"
	"github.com/Cdruetta/GCinsumos-page-back/internal/repository/mysql"
	"github.com/Cdruetta/GCinsumos-page-back/internal/service"
)

// RegisterRoutes 注册所有 HTTP 路由
func RegisterRoutes(app *iris.Application, cfg *config.Config) {
	// 初始化基础设施
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	// 仓储与服务
	productRepo := mysql.NewProductRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	orderStore := mysql.NewOrderStore(db)

	productCache := cache.NewProductCache(redisClient, cfg.Redis.ListCacheTTLSeconds)
	publisher := events.NewPublisher(mqConn)

	productSvc := service.NewProductService(productRepo, productCache)
	categorySvc := service.NewCategoryService(categoryRepo)
	orderSvc := service.NewOrderService(productRepo, orderStore, orderRepo, cfg.Tax.Rate, publisher)

	// 根路由：API 信息
	app.Get("/", func(ctx iris.Context) {
		ctx.JSON(iris.Map{
			"message": "GCinsumos API",
			"endpoints": iris.Map{
				"products":   "/api/products",
				"categories": "/api/categories",
				"orders":     "/api/orders",
			},
		})
	})

	api := app.Party("/api")

	// 健康检查
	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{
			"code": 0,
			"msg":  "ok",
		})
	})

	// 监控统计
	api.Get("/stats", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "data": service.GetMonitor().GetStats()})
	})

	// 商品列表（支持分类/关键字/价格区间过滤）
	api.Get("/products", func(ctx iris.Context) {
		filter := product.ListFilter{
			Category: ctx.URLParam("category"),
			Search:   ctx.URLParam("search"),
			MinPrice: ctx.URLParamInt64Default("minPrice", -1),
			MaxPrice: ctx.URLParamInt64Default("maxPrice", -1),
		}

		// 无过滤条件的全量列表走缓存
		cacheable := filter.Category == "" && filter.Search == "" && filter.MinPrice < 0 && filter.MaxPrice < 0
		if cacheable {
			if list := productCache.GetList(ctx.Request().Context()); list != nil {
				ctx.JSON(iris.Map{"code": 0, "data": list})
				return
			}
		}

		list, err := productSvc.List(ctx.Request().Context(), filter)
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		if cacheable {
			productCache.SetList(ctx.Request().Context(), list)
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	api.Get("/products/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		p, err := productSvc.GetByID(ctx.Request().Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "product not found"})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	api.Post("/products", func(ctx iris.Context) {
		var p product.Product
		if err := ctx.ReadJSON(&p); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if err := productSvc.Create(ctx.Request().Context(), &p); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		ctx.StatusCode(201)
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	api.Put("/products/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		existing, err := productSvc.GetByID(ctx.Request().Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "product not found"})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		var p product.Product
		if err := ctx.ReadJSON(&p); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		if err := productSvc.Update(ctx.Request().Context(), &p); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	// 只修改库存（后台补货）
	api.Patch("/products/{id:int64}/stock", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		var req struct {
			Stock int64 `json:"stock"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		p, err := productSvc.UpdateStock(ctx.Request().Context(), id, req.Stock)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "product not found"})
				return
			}
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": p})
	})

	api.Delete("/products/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		if err := productSvc.Delete(ctx.Request().Context(), id); err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "msg": "deleted"})
	})

	// 商品中实际出现过的分类名（去重）
	api.Get("/categories/names", func(ctx iris.Context) {
		names, err := productSvc.Categories(ctx.Request().Context())
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": names})
	})

	api.Get("/categories", func(ctx iris.Context) {
		list, err := categorySvc.ListAll(ctx.Request().Context())
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	api.Get("/categories/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		c, err := categorySvc.GetByID(ctx.Request().Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "category not found"})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": c})
	})

	api.Post("/categories", func(ctx iris.Context) {
		var c category.Category
		if err := ctx.ReadJSON(&c); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		if err := categorySvc.Create(ctx.Request().Context(), &c); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		ctx.StatusCode(201)
		ctx.JSON(iris.Map{"code": 0, "data": c})
	})

	api.Put("/categories/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		existing, err := categorySvc.GetByID(ctx.Request().Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "category not found"})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		var c category.Category
		if err := ctx.ReadJSON(&c); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		if err := categorySvc.Update(ctx.Request().Context(), &c); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": c})
	})

	api.Delete("/categories/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		if err := categorySvc.Delete(ctx.Request().Context(), id); err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "msg": "deleted"})
	})

	// 下单（带限流）
	api.Post("/orders", middleware.OrderRateLimit(), func(ctx iris.Context) {
		var req struct {
			Items []order.LineItem `json:"items"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		o, err := orderSvc.PlaceOrder(ctx.Request().Context(), req.Items)
		if err != nil {
			writePlacementError(ctx, err)
			return
		}
		ctx.StatusCode(201)
		ctx.JSON(iris.Map{"code": 0, "data": o})
	})

	api.Get("/orders", func(ctx iris.Context) {
		list, err := orderSvc.ListOrders(ctx.Request().Context())
		if err != nil {
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": list})
	})

	api.Get("/orders/{id:int64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetInt64("id")
		o, err := orderSvc.GetOrder(ctx.Request().Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				ctx.StopWithJSON(404, iris.Map{"code": 404, "msg": "order not found"})
				return
			}
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": err.Error()})
			return
		}
		ctx.JSON(iris.Map{"code": 0, "data": o})
	})
}

// writePlacementError 把下单错误映射为 HTTP 状态码
func writePlacementError(ctx iris.Context, err error) {
	if errors.Is(err, order.ErrEmptyOrder) {
		ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
		return
	}
	if pe, ok := order.AsPlacementError(err); ok {
		switch pe.Kind {
		case order.KindProductNotFound:
			ctx.StopWithJSON(404, iris.Map{
				"code":      404,
				"msg":       pe.Error(),
				"productId": strconv.FormatInt(pe.ProductID, 10),
			})
		case order.KindInsufficientStock:
			ctx.StopWithJSON(400, iris.Map{
				"code":      400,
				"msg":       pe.Error(),
				"productId": strconv.FormatInt(pe.ProductID, 10),
			})
		default:
			ctx.StopWithJSON(500, iris.Map{"code": 500, "msg": "failed to create order"})
		}
		return
	}
	ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
}
