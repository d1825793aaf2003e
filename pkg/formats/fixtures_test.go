package formats

// sampleMesh is a trimmed mesh text in the layout served for 3D models.
const sampleMesh = `newmtl mat_body
Ka 0.2 0.2 0.2
Kd 0.1 0.1 0.1
Ks 0.5 0.5 0.5
d 0
endmtl
newmtl mat_pin
Ka 0.3 0.3 0.3
Kd 0.8 0.8 0.8
Ks 0.9 0.9 0.9
d 0.25
endmtl
v 0 0 -2.54
v 2.54 0 0
v 2.54 2.54 0
v 0 2.54 5.08
v -2.54 -2.54 0
usemtl mat_body
f 1// 2// 3//
f 1// 3// 4//
usemtl mat_pin
f 5// 1// 2//
`

// sampleComponent is a footprint payload with one track, one pad and an unknown record.
const sampleComponent = `{
  "success": true,
  "result": {
    "uuid": "fp-uuid",
    "title": "Resistor (0805)",
    "dataStr": {
      "head": {"x": 4000, "y": "3000", "c_para": {"link": "https://example.com/ds.pdf", "package": "0805"}},
      "shape": [
        "TRACK~1~3~~3990 2990 4010 2990~gge1~0",
        "PAD~RECT~3990~3000~6~4~1~~1~0~3987 2998 3993 2998 3993 3002 3987 3002~0~gge2~0~~Y",
        "WIDGET~1~2~3"
      ]
    }
  }
}`
