package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/railgun/ecs"
)

type fieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

func (fc *fieldCache) get(t reflect.Type) []fieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

var inspectorFields = &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}

// RenderInspector draws the component inspector window for the browser's
// current selection. Component storage hands out stable pointers, so edits
// write straight through to the live component.
func (eb *EntityBrowser) RenderInspector(storage *ecs.Storage) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if eb.selected == ecs.InvalidEntityId {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if !storage.Alive(eb.selected) {
		imgui.Text(fmt.Sprintf("Entity %d is no longer alive", eb.selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", eb.selected))
	imgui.Text(fmt.Sprintf("Slot: %d  Gen: %d", eb.selected.Slot(), eb.selected.Generation()))
	imgui.Separator()

	for _, compType := range storage.ComponentTypes(eb.selected) {
		component := storage.GetComponent(eb.selected, compType)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			renderValue(compType.String(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderValue draws an editable widget for val, which must be addressable.
// The label prefixes widget IDs so same-named fields in different components
// do not collide.
func renderValue(label string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Struct:
		for _, field := range inspectorFields.get(val.Type()) {
			fieldVal := val.Field(field.Index)
			name := field.Name
			if field.IsPointer {
				if fieldVal.IsNil() {
					imgui.Text(fmt.Sprintf("%s: nil", name))
					continue
				}
				fieldVal = fieldVal.Elem()
			}
			renderField(label+"."+name, name, fieldVal)
		}
	default:
		renderField(label, "value", val)
	}
}

func renderField(id string, name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", id), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", id), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", id), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(fmt.Sprintf("%s##%s", name, id), &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", id), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderValue(id, val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Ptr:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		renderField(id, name, val.Elem())

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
