package service

import (
	"PhoneHub/models"
	"testing"
)

var allStatuses = []string{
	models.OrderStatusPending,
	models.OrderStatusConfirmed,
	models.OrderStatusShipping,
	models.OrderStatusDelivered,
	models.OrderStatusCancelled,
}

// 全量流转矩阵：除了表里的 5 条合法边，其余一律拒绝
func TestCanTransition_Matrix(t *testing.T) {
	allowed := map[[2]string]bool{
		{models.OrderStatusPending, models.OrderStatusConfirmed}:   true,
		{models.OrderStatusPending, models.OrderStatusCancelled}:   true,
		{models.OrderStatusConfirmed, models.OrderStatusShipping}:  true,
		{models.OrderStatusShipping, models.OrderStatusDelivered}:  true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_NoSelfLoop(t *testing.T) {
	for _, s := range allStatuses {
		if CanTransition(s, s) {
			t.Errorf("status %s should not transition to itself", s)
		}
	}
}

// 取消只能发生在待确认阶段
func TestCanTransition_CancelOnlyFromPending(t *testing.T) {
	for _, from := range allStatuses {
		want := from == models.OrderStatusPending
		if got := CanTransition(from, models.OrderStatusCancelled); got != want {
			t.Errorf("cancel from %s = %v, want %v", from, got, want)
		}
	}
}

func TestIsTerminalStatus(t *testing.T) {
	terminals := map[string]bool{
		models.OrderStatusDelivered: true,
		models.OrderStatusCancelled: true,
	}
	for _, s := range allStatuses {
		if got := IsTerminalStatus(s); got != terminals[s] {
			t.Errorf("IsTerminalStatus(%s) = %v, want %v", s, got, terminals[s])
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range allStatuses {
		if !IsValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	for _, s := range []string{"", "unknown", "DA_GIAO_HANG", "pending"} {
		if IsValidStatus(s) {
			t.Errorf("expected %s to be invalid", s)
		}
	}
}
