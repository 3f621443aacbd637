// internal/agendador/cron.go
package agendador

import (
	"time"

	"api/internal/logger"

	"github.com/robfig/cron/v3"
)

// Cron dispara o agendador diariamente segundo a expressão configurada.
type Cron struct {
	cron    *cron.Cron
	service *Service
}

func NewCron(service *Service) *Cron {
	return &Cron{
		cron:    cron.New(cron.WithLocation(time.Local)),
		service: service,
	}
}

// Start registra a tarefa e coloca o cron para rodar em background.
func (c *Cron) Start(spec string) error {
	_, err := c.cron.AddFunc(spec, func() {
		if _, err := c.service.ExecutarParaData(time.Now()); err != nil {
			logger.Log.Errorf("Execução agendada falhou: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.cron.Start()
	logger.Log.Infof("Agendador de despesas iniciado (cron %q)", spec)
	return nil
}

// Stop interrompe o cron; tarefas em andamento terminam.
func (c *Cron) Stop() {
	c.cron.Stop()
}
