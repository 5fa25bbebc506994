package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"conecta/models"
)

// fixedNumberSource devolve sempre o mesmo protocolo, ignorando
// colisões. Útil para forçar duplicidade nos testes.
type fixedNumberSource struct{ number string }

func (f fixedNumberSource) Next(exists func(string) bool) string { return f.number }

func TestRandomNumberSourceFormat(t *testing.T) {
	source := &randomNumberSource{
		rand: rand.New(rand.NewSource(1)),
		now:  fixedTime(2024, time.June, 1),
	}

	number := source.Next(func(string) bool { return false })
	if len(number) != 9 {
		t.Fatalf("len(%q) = %d, want 9", number, len(number))
	}
	if !strings.HasPrefix(number, "2024") {
		t.Errorf("número %q deveria começar com o ano 2024", number)
	}
}

func TestRandomNumberSourceRetriesAndGivesUp(t *testing.T) {
	source := &randomNumberSource{
		rand: rand.New(rand.NewSource(1)),
		now:  fixedTime(2024, time.June, 1),
	}

	calls := 0
	number := source.Next(func(string) bool {
		calls++
		return true
	})

	// Dez tentativas e segue assim mesmo com o último número.
	if calls != 10 {
		t.Errorf("tentativas = %d, want 10", calls)
	}
	if number == "" {
		t.Error("mesmo esgotando as tentativas um número deve ser emitido")
	}
}

func TestTicketCreate(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "chamado@teste.com")

	svc := NewTicketService(db, testLogger())
	svc.now = fixedTime(2024, time.May, 20)

	ticket, err := svc.Create(account.ID, "technical", "Internet lenta", "Velocidade abaixo do contratado desde ontem.")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ticket.ID == 0 {
		t.Fatal("chamado criado sem ID")
	}
	if ticket.Status != models.TICKET_STATUS_OPEN {
		t.Errorf("status = %s, want %s", ticket.Status, models.TICKET_STATUS_OPEN)
	}
	if !strings.HasPrefix(ticket.TicketNumber, fmt.Sprint(time.Now().Year())) {
		t.Errorf("protocolo %q não começa com o ano corrente", ticket.TicketNumber)
	}
	if ticket.OpenedAt == nil || !ticket.OpenedAt.Equal(fixedTime(2024, time.May, 20)()) {
		t.Errorf("opened_at = %v, want 2024-05-20", ticket.OpenedAt)
	}
}

func TestTicketCreateValidation(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "validacao@teste.com")
	svc := NewTicketService(db, testLogger())

	cases := []struct {
		name        string
		category    string
		subject     string
		description string
	}{
		{"categoria desconhecida", "juridico", "Assunto", "Descrição"},
		{"categoria vazia", "", "Assunto", "Descrição"},
		{"assunto só com espaços", "technical", "   ", "Descrição"},
		{"descrição vazia", "technical", "Assunto", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(account.ID, tc.category, tc.subject, tc.description)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}

	// Nenhum registro pode ter sido gravado.
	var count int
	if err := db.Model(&models.Ticket{}).Count(&count).Error; err != nil {
		t.Fatalf("contar chamados: %v", err)
	}
	if count != 0 {
		t.Errorf("chamados = %d, want 0", count)
	}
}

func TestTicketCreateAcceptsDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "duplicado@teste.com")

	svc := NewTicketService(db, testLogger())
	svc.numbers = fixedNumberSource{number: "202400042"}

	first, err := svc.Create(account.ID, "commercial", "Mudança de endereço", "Preciso transferir a instalação.")
	if err != nil {
		t.Fatalf("primeiro chamado: %v", err)
	}
	second, err := svc.Create(account.ID, "commercial", "Segunda via", "Solicito segunda via do contrato.")
	if err != nil {
		t.Fatalf("segundo chamado: %v", err)
	}
	if first.TicketNumber != second.TicketNumber {
		t.Fatalf("protocolos diferem: %s vs %s", first.TicketNumber, second.TicketNumber)
	}
}

func TestTicketListForAccountOrder(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "lista@teste.com")
	other := seedAccount(t, db, "vizinha@teste.com")

	svc := NewTicketService(db, testLogger())

	svc.now = fixedTime(2024, time.January, 10)
	older, err := svc.Create(account.ID, "technical", "Sem sinal", "Roteador com luz vermelha.")
	if err != nil {
		t.Fatalf("criar chamado: %v", err)
	}

	svc.now = fixedTime(2024, time.February, 10)
	newer, err := svc.Create(account.ID, "financial", "Cobrança indevida", "Valor diferente do contratado.")
	if err != nil {
		t.Fatalf("criar chamado: %v", err)
	}

	if _, err := svc.Create(other.ID, "technical", "Oscilação", "Quedas à noite."); err != nil {
		t.Fatalf("criar chamado da outra conta: %v", err)
	}

	tickets, err := svc.ListForAccount(account.ID)
	if err != nil {
		t.Fatalf("ListForAccount: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("len = %d, want 2", len(tickets))
	}
	if tickets[0].ID != newer.ID || tickets[1].ID != older.ID {
		t.Errorf("ordem = [%d %d], want [%d %d]", tickets[0].ID, tickets[1].ID, newer.ID, older.ID)
	}
}

func TestTicketFindByIDOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedAccount(t, db, "donochamado@teste.com")
	other := seedAccount(t, db, "intruso@teste.com")

	svc := NewTicketService(db, testLogger())

	ticket, err := svc.Create(owner.ID, "technical", "Lentidão", "Ping alto em horário de pico.")
	if err != nil {
		t.Fatalf("criar chamado: %v", err)
	}

	if _, err := svc.FindByID(ticket.ID, owner.ID); err != nil {
		t.Fatalf("dono deveria enxergar o chamado: %v", err)
	}
	if _, err := svc.FindByID(ticket.ID, other.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestTicketUpdate(t *testing.T) {
	db := newTestDB(t)
	account := seedAccount(t, db, "atualiza@teste.com")

	svc := NewTicketService(db, testLogger())
	svc.now = fixedTime(2024, time.April, 1)

	ticket, err := svc.Create(account.ID, "technical", "Sem internet", "Sem conexão desde cedo.")
	if err != nil {
		t.Fatalf("criar chamado: %v", err)
	}

	// Só resposta: status permanece.
	if err := svc.Update(ticket.ID, "", "Equipe acionada."); err != nil {
		t.Fatalf("Update resposta: %v", err)
	}
	updated, err := svc.FindByID(ticket.ID, account.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if updated.Status != models.TICKET_STATUS_OPEN {
		t.Errorf("status = %s, want %s", updated.Status, models.TICKET_STATUS_OPEN)
	}
	if updated.Response != "Equipe acionada." {
		t.Errorf("response = %q", updated.Response)
	}
	if updated.ResolvedAt != nil {
		t.Error("resolved_at não deveria estar preenchido")
	}

	// Resolver carimba resolved_at com o relógio do serviço.
	svc.now = fixedTime(2024, time.April, 3)
	if err := svc.Update(ticket.ID, models.TICKET_STATUS_RESOLVED, "Problema na rua, corrigido."); err != nil {
		t.Fatalf("Update resolução: %v", err)
	}
	resolved, err := svc.FindByID(ticket.ID, account.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if resolved.Status != models.TICKET_STATUS_RESOLVED {
		t.Errorf("status = %s, want %s", resolved.Status, models.TICKET_STATUS_RESOLVED)
	}
	if resolved.ResolvedAt == nil {
		t.Fatal("resolved_at deveria estar preenchido")
	}
	if !resolved.ResolvedAt.Equal(fixedTime(2024, time.April, 3)()) {
		t.Errorf("resolved_at = %v, want 2024-04-03", resolved.ResolvedAt)
	}
}

func TestTicketUpdateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewTicketService(db, testLogger())

	if err := svc.Update(1, "", "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("sem campos: err = %v, want ErrValidation", err)
	}
	if err := svc.Update(9999, models.TICKET_STATUS_IN_PROGRESS, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("chamado inexistente: err = %v, want ErrNotFound", err)
	}
}
