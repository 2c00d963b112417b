package value

// The six process-wide prototype singletons (spec §3). All are locked
// Objects constructed at package init; ObjectPrototype inherits from
// ValuePrototype, the rest inherit from ValuePrototype directly.
var (
	ValuePrototype    Value
	ObjectPrototype   Value
	ArrayPrototype    Value
	NumberPrototype   Value
	StringPrototype   Value
	FunctionPrototype Value
)

func init() {
	bootstrapPrototypes()
}

// bootstrapPrototypes wires the six-prototype DAG bottom-up (spec §9:
// "must be built bottom-up and locked before the first user Value is
// created"). It sets each record's internal prototype field directly,
// bypassing SetPrototypeOf's public validation and lock checks — those
// don't apply yet, and applying the public "write Null pins to
// ValuePrototype" rule here would be circular for ValuePrototype
// itself (see DESIGN.md).
func bootstrapPrototypes() {
	vp := newObjectRecord(Undefined)
	op := newObjectRecord(Undefined)
	ap := newObjectRecord(Undefined)
	np := newObjectRecord(Undefined)
	sp := newObjectRecord(Undefined)
	fp := newObjectRecord(Undefined)

	vpVal := Value{kind: KindObject, ref: vp}
	vp.prototype = Null // root of the DAG: nothing above it

	op.prototype = vpVal
	ap.prototype = vpVal
	np.prototype = vpVal
	sp.prototype = vpVal
	fp.prototype = vpVal

	vp.locked = true
	op.locked = true
	ap.locked = true
	np.locked = true
	sp.locked = true
	fp.locked = true

	ValuePrototype = vpVal
	ObjectPrototype = Value{kind: KindObject, ref: op}
	ArrayPrototype = Value{kind: KindObject, ref: ap}
	NumberPrototype = Value{kind: KindObject, ref: np}
	StringPrototype = Value{kind: KindObject, ref: sp}
	FunctionPrototype = Value{kind: KindObject, ref: fp}
}

// PrototypeOf implements the prototype accessor read (spec §4.6).
func PrototypeOf(v Value) Value {
	switch v.kind {
	case KindObject:
		obj := v.ref.(*Object)
		if obj.prototype.kind != KindUndefined {
			return obj.prototype
		}
		return ObjectPrototype
	case KindArray:
		return ArrayPrototype
	case KindNumber:
		return NumberPrototype
	case KindString:
		return StringPrototype
	case KindFunction:
		return FunctionPrototype
	default: // Undefined, Null, True, False
		return ValuePrototype
	}
}

// SetPrototypeOf implements the prototype accessor write (spec §4.6).
func SetPrototypeOf(r Value, p Value) error {
	obj, ok := AsObject(r)
	if !ok {
		return &Error{Code: InvalidPrototypeOperation, Msg: "prototype is writable only on Object values"}
	}
	if obj.locked {
		return &Error{Code: ObjectIsLocked}
	}
	switch p.kind {
	case KindUndefined:
		obj.prototype = Undefined
	case KindNull:
		obj.prototype = ValuePrototype
	case KindObject:
		obj.prototype = p
	default:
		return &Error{Code: InvalidPrototypeOperation, Msg: "prototype must be Undefined, Null, or an Object"}
	}
	return nil
}

// maxPrototypeDepth is both the cycle detector and the depth limit
// (I2): a chain walk that is still on an Object after this many hops
// is treated as circular regardless of whether it actually cycles.
const maxPrototypeDepth = 100

// walkChain walks a prototype chain, invoking visit for each Object
// node. If includeSelf, start itself is checked first when it is an
// Object (used by Metadispatch, which may find a metamethod on the
// receiver itself); otherwise the walk begins at PrototypeOf(start)
// (used by the indexer, which already checked the receiver's own
// properties separately).
func walkChain(start Value, includeSelf bool, visit func(*Object) (Value, bool)) (Value, *Object, bool, error) {
	cur := start
	if !includeSelf {
		cur = PrototypeOf(start)
	}
	for i := 0; i < maxPrototypeDepth; i++ {
		if cur.kind != KindObject {
			return Undefined, nil, false, nil
		}
		node := cur.ref.(*Object)
		if v, ok := visit(node); ok {
			return v, node, true, nil
		}
		cur = PrototypeOf(cur)
	}
	if cur.kind == KindObject {
		return Undefined, nil, false, &Error{Code: CircularPrototype, Msg: "prototype chain exceeded depth 100"}
	}
	return Undefined, nil, false, nil
}
