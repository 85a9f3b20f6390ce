package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"frontdesk/models"
)

var matcherDirectory = []models.Employee{
	{ID: "emp001", Name: "Ahmed Al Mansoori", Department: "Engineering", Title: "Senior Software Engineer"},
	{ID: "emp002", Name: "Fatima Al Zarooni", Department: "Engineering", Title: "Engineering Manager"},
}

func TestMatchNameReturnsRankedMatch(t *testing.T) {
	llm := &fakeLLM{response: `{"matchedName":"Ahmed Al Mansoori","confidence":0.85,"reasoning":"Closest phonetic match."}`}
	e := NewDefaultExtractor(llm)

	result, err := e.MatchName(context.Background(), "Ahmad Mansoori", matcherDirectory)
	if err != nil {
		t.Fatalf("MatchName: %v", err)
	}
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.MatchedName != "Ahmed Al Mansoori" {
		t.Fatalf("unexpected match %q", result.MatchedName)
	}
	if result.Confidence != 0.85 {
		t.Fatalf("unexpected confidence %v", result.Confidence)
	}
}

func TestMatchNameNullMatchIsNotAnError(t *testing.T) {
	llm := &fakeLLM{response: `{"matchedName":null,"confidence":0,"reasoning":"Nobody fits."}`}
	e := NewDefaultExtractor(llm)

	result, err := e.MatchName(context.Background(), "Zorblax", matcherDirectory)
	if err != nil {
		t.Fatalf("MatchName: %v", err)
	}
	if result != nil {
		t.Fatalf("expected no match, got %+v", result)
	}
}

func TestMatchNameMalformedResponseErrors(t *testing.T) {
	llm := &fakeLLM{response: "I think you mean Ahmed."}
	e := NewDefaultExtractor(llm)

	if _, err := e.MatchName(context.Background(), "Ahmad", matcherDirectory); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestMatchNameTransportErrorSurfaces(t *testing.T) {
	llm := &fakeLLM{err: errors.New("rate limited")}
	e := NewDefaultExtractor(llm)

	if _, err := e.MatchName(context.Background(), "Ahmad", matcherDirectory); err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func TestMatchNamePromptExcludesPrivateFields(t *testing.T) {
	llm := &fakeLLM{response: `{"matchedName":null,"confidence":0,"reasoning":""}`}
	e := NewDefaultExtractor(llm)

	dir := []models.Employee{{
		ID: "emp001", Name: "Ahmed Al Mansoori", Department: "Engineering",
		Title: "Senior Software Engineer", Email: "ahmed.almansoori@company.com",
	}}
	if _, err := e.MatchName(context.Background(), "Ahmad", dir); err != nil {
		t.Fatalf("MatchName: %v", err)
	}

	if strings.Contains(llm.prompt, "emp001") {
		t.Error("prompt leaks employee id")
	}
	if strings.Contains(llm.prompt, "ahmed.almansoori@company.com") {
		t.Error("prompt leaks employee email")
	}
	if !strings.Contains(llm.prompt, "Ahmed Al Mansoori") {
		t.Error("prompt missing candidate name")
	}
}
