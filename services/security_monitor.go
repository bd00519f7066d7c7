package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"donna_landing_go/config"
)

// Rejection reasons tracked by the monitor.
const (
	RejectionRateLimited = "rate_limited"
	RejectionCaptcha     = "captcha_failed"
)

// SecurityAlert is raised when one IP keeps getting its contact submissions rejected.
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Count     int
}

// SecurityMonitor counts rejected contact submissions per IP in a sliding
// window and raises at most one alert per IP per hour.
type SecurityMonitor struct {
	mu         sync.Mutex
	rejections map[string][]time.Time
	alertedIPs map[string]time.Time
	alerts     []SecurityAlert

	threshold int
	window    time.Duration
	notify    func(SecurityAlert)
	now       func() time.Time
}

// Global monitor instance, nil until InitSecurityMonitor runs.
var Monitor *SecurityMonitor

// NewSecurityMonitor creates a monitor. notify may be nil.
func NewSecurityMonitor(threshold int, window time.Duration, notify func(SecurityAlert)) *SecurityMonitor {
	return &SecurityMonitor{
		rejections: make(map[string][]time.Time),
		alertedIPs: make(map[string]time.Time),
		threshold:  threshold,
		window:     window,
		notify:     notify,
		now:        time.Now,
	}
}

// InitSecurityMonitor sets up the global monitor: 10 rejections in 10 minutes
// raise an alert, mailed to the contact inbox when one is configured.
func InitSecurityMonitor(cfg *config.Config) {
	Monitor = NewSecurityMonitor(10, 10*time.Minute, func(a SecurityAlert) {
		if cfg.ContactInbox == "" {
			return
		}
		SendEmailAsync(cfg, &Email{
			To:      []string{cfg.ContactInbox},
			Subject: fmt.Sprintf("Security alert: %s", a.Reason),
			TextBody: fmt.Sprintf("Repeated rejected contact submissions.\n\nReason: %s\nIP address: %s\nRejections: %d\nTime: %s\n",
				a.Reason, a.IP, a.Count, a.Timestamp.Format(time.RFC1123)),
		}, nil)
	})
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			Monitor.Cleanup()
		}
	}()
}

// TrackContactRejection records a rejection on the global monitor, if any.
func TrackContactRejection(ip, reason string) {
	if Monitor != nil {
		Monitor.TrackRejection(ip, reason)
	}
}

// TrackRejection records a rejected submission from ip and raises an alert
// once the threshold is reached within the window.
func (m *SecurityMonitor) TrackRejection(ip, reason string) {
	m.mu.Lock()
	now := m.now()
	windowStart := now.Add(-m.window)
	recent := m.rejections[ip][:0]
	for _, t := range m.rejections[ip] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	m.rejections[ip] = recent

	var alert *SecurityAlert
	if len(recent) >= m.threshold {
		alert = m.raiseLocked(ip, reason, len(recent), now)
	}
	m.mu.Unlock()

	if alert != nil && m.notify != nil {
		m.notify(*alert)
	}
}

// raiseLocked stores and logs an alert unless ip was alerted in the last hour.
func (m *SecurityMonitor) raiseLocked(ip, reason string, count int, now time.Time) *SecurityAlert {
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < time.Hour {
		return nil
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{Timestamp: now, IP: ip, Reason: reason, Count: count}
	// Newest first, keep 100.
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > 100 {
		m.alerts = m.alerts[:100]
	}

	log.Printf("[CRITICAL] Security alert: %s from IP %s (%d rejections)", reason, ip, count)
	return &alert
}

// RecentAlerts returns a copy of the alert history, newest first.
func (m *SecurityMonitor) RecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SecurityAlert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

// Cleanup drops IPs with no rejection inside the window and expired alert marks.
func (m *SecurityMonitor) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for ip, times := range m.rejections {
		if len(times) == 0 || now.Sub(times[len(times)-1]) > m.window {
			delete(m.rejections, ip)
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) > time.Hour {
			delete(m.alertedIPs, ip)
		}
	}
}
