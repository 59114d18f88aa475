package prover

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the status API served alongside the sync loop.
func (s *Service) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.GET("/health", s.healthCheck)
	router.GET("/api/lightclient-contract", s.contractInfo)
	router.GET("/api/status", s.status)
	return router
}

// Serve runs the status API on the configured port. A zero port disables it.
func (s *Service) Serve() error {
	if s.cfg.Port == 0 {
		return nil
	}
	return s.Router().Run(fmt.Sprintf("0.0.0.0:%d", s.cfg.Port))
}

func (s *Service) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Health check passed",
	})
}

func (s *Service) contractInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"address": s.ContractAddress(),
	})
}

func (s *Service) status(c *gin.Context) {
	last := s.LastSynced()
	if last == nil {
		c.JSON(http.StatusOK, gin.H{"synced": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"synced":        true,
		"viewNum":       last.ViewNum,
		"blockHeight":   last.BlockHeight,
		"blockCommRoot": last.BlockCommRoot.String(),
	})
}
