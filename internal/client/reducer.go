package client

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/tactical_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	queueSize = 64

	// Координаты и место, с которыми уходит экстренный вызов с этого терминала
	emergencyLocation = "Current location"
)

var emergencyCoordinates = models.Coordinates{Lat: 40.7128, Lng: -74.0060}

type message interface{}

type (
	tickMsg  struct{}
	eventMsg struct{ event models.InboundEvent }
	linkMsg  struct{ up bool }

	officerLoadedMsg struct {
		officer *models.Officer
		err     error
	}
	routesLoadedMsg struct {
		routes []models.Route
		err    error
	}
	alertsLoadedMsg struct {
		alerts []models.Alert
		err    error
	}
	servicesLoadedMsg struct {
		services []models.EmergencyService
		err      error
	}

	emergencyRequestedMsg struct{}
	emergencyCancelledMsg struct{}
	emergencyConfirmedMsg struct{}
	emergencySentMsg      struct {
		alert *models.Alert
		err   error
	}
	incomingDismissedMsg struct{}
)

// Reducer владеет локальным состоянием дашборда. Все изменения выполняются в одной
// горутине Run; сетевые операции идут в фоне и возвращают результат в очередь.
type Reducer struct {
	source DataSource
	badge  string
	logger *logrus.Logger

	queue        chan message
	tickInterval time.Duration
	onChange     func(State)

	state State

	alertsInFlight bool
	alertsPending  bool

	// ctx текущего Run; читается только из горутины Run
	ctx  context.Context
	stop chan struct{}

	mu        sync.RWMutex
	published State
}

// NewReducer создает редьюсер. onChange вызывается из горутины Run после каждого изменения и может быть nil.
func NewReducer(source DataSource, badge string, logger *logrus.Logger, onChange func(State)) *Reducer {
	r := &Reducer{
		source:       source,
		badge:        badge,
		logger:       logger,
		queue:        make(chan message, queueSize),
		tickInterval: time.Second,
		onChange:     onChange,
		state:        State{MissionSeconds: MissionStartSeconds},
		ctx:          context.Background(),
		stop:         make(chan struct{}),
	}
	r.published = r.state.clone()
	return r
}

// Snapshot возвращает копию последнего опубликованного состояния
func (r *Reducer) Snapshot() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.published.clone()
}

// Dispatch ставит событие канала /ws в очередь. События применяются в порядке получения.
func (r *Reducer) Dispatch(event models.InboundEvent) {
	r.post(eventMsg{event: event})
}

// SetLink сообщает о разрыве или восстановлении канала /ws
func (r *Reducer) SetLink(up bool) {
	r.post(linkMsg{up: up})
}

// RequestEmergency открывает диалог подтверждения. Сам по себе ничего не отправляет.
func (r *Reducer) RequestEmergency() { r.post(emergencyRequestedMsg{}) }

// ConfirmEmergency отправляет экстренный вызов, только если диалог открыт
func (r *Reducer) ConfirmEmergency() { r.post(emergencyConfirmedMsg{}) }

func (r *Reducer) CancelEmergency() { r.post(emergencyCancelledMsg{}) }

// DismissIncoming закрывает уведомление о чужом emergency_alert
func (r *Reducer) DismissIncoming() { r.post(incomingDismissedMsg{}) }

func (r *Reducer) post(msg message) {
	select {
	case r.queue <- msg:
	case <-r.stop:
	}
}

// Run запускает начальную загрузку и обрабатывает очередь до отмены ctx. Вызывается один раз.
func (r *Reducer) Run(ctx context.Context) error {
	r.ctx = ctx
	defer close(r.stop)
	r.loadInitial()

	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.apply(tickMsg{})
		case msg := <-r.queue:
			r.apply(msg)
		}
	}
}

func (r *Reducer) apply(msg message) {
	switch m := msg.(type) {
	case tickMsg:
		r.state.MissionSeconds++
	case eventMsg:
		r.applyEvent(m.event)
	case linkMsg:
		if !m.up {
			r.state.Connected = false
		}
	case officerLoadedMsg:
		if m.err != nil {
			r.logger.WithError(m.err).Warn("Failed to load officer")
			break
		}
		r.state.Officer = m.officer
	case routesLoadedMsg:
		if m.err != nil {
			r.logger.WithError(m.err).Warn("Failed to load routes, keeping cached routes")
			break
		}
		r.state.Routes = m.routes
	case alertsLoadedMsg:
		r.alertsInFlight = false
		if m.err != nil {
			r.logger.WithError(m.err).Warn("Failed to refresh alerts, keeping cached alerts")
		} else {
			r.state.Alerts = m.alerts
			r.state.AlertsStale = false
		}
		if r.alertsPending {
			r.alertsPending = false
			r.refetchAlerts()
		}
	case servicesLoadedMsg:
		if m.err != nil {
			r.logger.WithError(m.err).Warn("Failed to load emergency services")
			break
		}
		r.state.Services = m.services
	case emergencyRequestedMsg:
		r.state.EmergencyPrompt = true
	case emergencyCancelledMsg:
		if !r.state.EmergencySending {
			r.state.EmergencyPrompt = false
		}
	case emergencyConfirmedMsg:
		if !r.state.EmergencyPrompt || r.state.EmergencySending {
			return
		}
		r.state.EmergencySending = true
		r.sendEmergency()
	case emergencySentMsg:
		r.state.EmergencySending = false
		if m.err != nil {
			// Диалог остается открытым, пользователь может повторить или отменить
			r.logger.WithError(m.err).Error("Failed to send emergency alert")
			break
		}
		r.state.EmergencyPrompt = false
		r.logger.WithField("alert_id", m.alert.ID).Warn("Emergency alert sent")
	case incomingDismissedMsg:
		r.state.IncomingEmergency = nil
	}
	r.publish()
}

func (r *Reducer) applyEvent(event models.InboundEvent) {
	switch event.Type {
	case models.EventConnected, models.EventStatusUpdate:
		r.state.Connected = true
	case models.EventNewAlert, models.EventAlertDeactivated:
		r.invalidateAlerts()
	case models.EventEmergencyAlert:
		alert, err := decodeAlert(event.Data)
		if err != nil {
			r.logger.WithError(err).Warn("Malformed emergency_alert payload")
		} else {
			r.state.IncomingEmergency = alert
		}
		r.invalidateAlerts()
	default:
		r.logger.WithField("type", event.Type).Debug("Ignoring event")
	}
}

// invalidateAlerts помечает кэш устаревшим и перечитывает его. Пока идет запрос,
// повторные инвалидации схлопываются в один дополнительный запрос.
func (r *Reducer) invalidateAlerts() {
	r.state.AlertsStale = true
	if r.alertsInFlight {
		r.alertsPending = true
		return
	}
	r.refetchAlerts()
}

func (r *Reducer) refetchAlerts() {
	r.alertsInFlight = true
	ctx := r.ctx
	go func() {
		alerts, err := r.source.ActiveAlerts(ctx)
		r.post(alertsLoadedMsg{alerts: alerts, err: err})
	}()
}

func (r *Reducer) loadInitial() {
	ctx := r.ctx
	go func() {
		officer, err := r.source.Officer(ctx, r.badge)
		r.post(officerLoadedMsg{officer: officer, err: err})
	}()
	go func() {
		routes, err := r.source.Routes(ctx)
		r.post(routesLoadedMsg{routes: routes, err: err})
	}()
	go func() {
		services, err := r.source.EmergencyServices(ctx)
		r.post(servicesLoadedMsg{services: services, err: err})
	}()
	r.refetchAlerts()
}

func (r *Reducer) sendEmergency() {
	coords := emergencyCoordinates
	req := models.EmergencyRequest{
		Location:    emergencyLocation,
		Coordinates: &coords,
	}
	if r.state.Officer != nil {
		req.OfficerID = r.state.Officer.ID
	}

	ctx := r.ctx
	go func() {
		alert, err := r.source.TriggerEmergency(ctx, req)
		r.post(emergencySentMsg{alert: alert, err: err})
	}()
}

func (r *Reducer) publish() {
	snapshot := r.state.clone()
	r.mu.Lock()
	r.published = snapshot
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(snapshot)
	}
}
