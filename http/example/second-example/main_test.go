package main

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func Test(t *testing.T) {
	go main()

	var (
		actual *http.Response
		err    error
	)
	deadline := time.Now().Add(2 * time.Second)
	for {
		if actual, err = http.Get("http://" + addr + "/"); err == nil {
			break
		}

		if time.Now().After(deadline) {
			t.Fatal(err)
		}

		time.Sleep(10 * time.Millisecond)
	}
	actual.Body.Close()

	if actual.StatusCode != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, actual.StatusCode)
	}

	actual, err = http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	actual.Body.Close()

	if actual.StatusCode != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, actual.StatusCode)
	}

	actual, err = http.Get("http://" + addr + "/shutdown")
	if err != nil {
		t.Fatal(err)
	}
	actual.Body.Close()

	if actual.StatusCode != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, actual.StatusCode)
	}

	time.Sleep(100 * time.Millisecond)
	_, err = http.Get("http://" + addr + "/")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf(`expected "connection refused" in error, got %v`, err)
	}
}
