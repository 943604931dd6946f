package cron

import (
	"testing"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	ran := false
	Register("testreloadjob", "@every 1h", func(args ...string) {
		ran = true
	})
	defer Unregister("testreloadjob")

	jobs := Jobs()
	j, ok := jobs["testreloadjob"]
	if !ok {
		t.Fatal("testreloadjob not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	j.Run()
	if !ran {
		t.Error("Run did not execute")
	}
}

func TestRegistry_JobsReturnsCopy(t *testing.T) {
	Register("copyjob", "@daily", func(...string) {})
	defer Unregister("copyjob")

	jobs := Jobs()
	delete(jobs, "copyjob")
	if _, ok := Jobs()["copyjob"]; !ok {
		t.Error("mutating the returned map leaked into the registry")
	}
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}
