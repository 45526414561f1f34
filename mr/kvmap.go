package mr

import (
	"golang.org/x/exp/slices"
)

// KVMap buffers values per key and collapses a key's buffer through
// the reduce function once it holds maxcap values.
type KVMap struct {
	mincap int
	maxcap int
	kvs    map[string]*values
}

type values struct {
	k  string
	vs []int64
}

func NewKVMap(mincap, maxcap int) *KVMap {
	return &KVMap{
		mincap: mincap,
		maxcap: maxcap,
		kvs:    make(map[string]*values),
	}
}

func newValues(k string, mincap int) *values {
	return &values{
		k:  k,
		vs: make([]int64, 0, mincap),
	}
}

func (kvm *KVMap) lookup(key string) *values {
	if e, ok := kvm.kvs[key]; ok {
		return e
	}
	v := newValues(key, kvm.mincap)
	kvm.kvs[key] = v
	return v
}

func (kvm *KVMap) Len() int {
	return len(kvm.kvs)
}

func (kvm *KVMap) Combine(key string, value int64, combinef ReduceT) error {
	e := kvm.lookup(key)
	if err := e.combine(value, combinef, kvm.maxcap); err != nil {
		return err
	}
	return nil
}

// Emit reduces every key in lexicographic order.
func (kvm *KVMap) Emit(combinef ReduceT, emit EmitT) error {
	keys := make([]string, 0, len(kvm.kvs))
	for k := range kvm.kvs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := combinef(k, kvm.kvs[k].vs, emit); err != nil {
			return err
		}
	}
	return nil
}

func (e *values) combine(value int64, combinef ReduceT, maxcap int) error {
	e.vs = append(e.vs, value)
	if len(e.vs) >= maxcap {
		if err := combinef(e.k, e.vs, func(kv *KeyValue) error {
			e.vs = e.vs[:1]
			e.vs[0] = kv.Value
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

func (e *values) reset(k string) {
	e.k = k
	e.vs = e.vs[:0]
}
