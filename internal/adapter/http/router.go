package http

import (
	"github.com/RoshanShah43/rs-bazar/internal/adapter/http/middleware"
	"github.com/RoshanShah43/rs-bazar/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(ch *CartHandler, co *CheckoutHandler, sess *middleware.Session) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1", sess.Resolve())
	{
		v1.GET("/cart", ch.GetCart)
		v1.GET("/cart/count", ch.Count)
		v1.POST("/cart/items", ch.AddItem)
		v1.DELETE("/cart/items/:id", ch.RemoveItem)
		v1.DELETE("/cart", ch.Clear)

		v1.GET("/checkout", co.Review)
		v1.POST("/checkout", co.Begin)
		v1.DELETE("/checkout", co.Dismiss)
		v1.POST("/checkout/submit", co.Submit)
	}

	return r
}
