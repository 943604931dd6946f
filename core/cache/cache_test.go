package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := GetInstance()
	key := "test-set-get"
	c.Set(key, "val", 0, nil)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
	c.Delete(key)
}

func TestGet_Missing(t *testing.T) {
	c := GetInstance()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	c.Set("exp", "v", 1, nil)
	c.m.Store("exp", cacheItem{Value: "v", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("exp"); ok {
		t.Error("Get expired key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := GetInstance()
	key := "test-delete"
	c.Set(key, "x", 0, nil)
	c.Delete(key)
	_, ok := c.Get(key)
	if ok {
		t.Error("Delete: key should be gone")
	}
}

func TestSet_WithTags_DeleteByTag(t *testing.T) {
	c := GetInstance()
	c.Set("tag-k1", "v1", 0, []string{"t1"})
	c.Set("tag-k2", "v2", 0, []string{"t1"})

	c.DeleteByTag("t1")
	if _, ok := c.Get("tag-k1"); ok {
		t.Error("DeleteByTag: tag-k1 should be gone")
	}
	if _, ok := c.Get("tag-k2"); ok {
		t.Error("DeleteByTag: tag-k2 should be gone")
	}
}

func TestDeleteByTag_UnknownTag(t *testing.T) {
	c := GetInstance()
	c.DeleteByTag("no-such-tag")
}
