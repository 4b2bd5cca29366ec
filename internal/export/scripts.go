package export

import (
	"encoding/json"
	"fmt"
)

// The inline scripts below are the no-framework reimplementations of the
// behaviors the live preview gets from its component layer. Each one is
// scoped to a single block's DOM id and shares no state with any other
// block. Dynamic values are injected as JSON string literals —
// encoding/json escapes <, > and & to \uXXXX, so user input can never
// terminate the script element.

// jsString renders a Go string as a safe JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// scheduleScript runs once at page load and hides every element whose
// schedule bounds exclude the current time. It does not re-evaluate: a
// page kept open across a boundary shows its load-time state until
// reloaded.
const scheduleScript = `(function(){
var now=Date.now();
document.querySelectorAll('[data-valid-from],[data-valid-until]').forEach(function(el){
var from=el.dataset.validFrom?Date.parse(el.dataset.validFrom):null;
var until=el.dataset.validUntil?Date.parse(el.dataset.validUntil):null;
if((from!==null&&now<from)||(until!==null&&now>until)){el.style.display='none';}
});
})();`

// lockedScript wires the click-to-decrypt flow for one locked link. The
// key derivation must mirror the lockbox wire format exactly:
// base64(salt[16] || iv[12] || ciphertext+tag), PBKDF2-SHA256 100000
// iterations, AES-256-GCM. A failed auth check surfaces as an alert.
func lockedScript(domID string) string {
	return fmt.Sprintf(`(function(){
var el=document.getElementById(%s);
if(!el)return;
el.addEventListener('click',function(){
var pw=prompt('This link is password protected. Enter the password:');
if(!pw)return;
var raw=atob(el.dataset.encrypted);
var bytes=new Uint8Array(raw.length);
for(var i=0;i<raw.length;i++){bytes[i]=raw.charCodeAt(i);}
var salt=bytes.slice(0,16),iv=bytes.slice(16,28),ct=bytes.slice(28);
crypto.subtle.importKey('raw',new TextEncoder().encode(pw),'PBKDF2',false,['deriveKey'])
.then(function(km){return crypto.subtle.deriveKey({name:'PBKDF2',salt:salt,iterations:100000,hash:'SHA-256'},km,{name:'AES-GCM',length:256},false,['decrypt']);})
.then(function(key){return crypto.subtle.decrypt({name:'AES-GCM',iv:iv},key,ct);})
.then(function(plain){window.open(new TextDecoder().decode(plain),el.dataset.target||'_blank');})
.catch(function(){alert('Incorrect password');});
});
})();`, jsString(domID))
}

// actionScript substitutes {Label} and {label} placeholders in the
// message template with live input values (every occurrence; unmatched
// placeholders stay literal), strips non-digits from the number and opens
// the wa.me composer.
func actionScript(domID, template, number string) string {
	return fmt.Sprintf(`(function(){
var btn=document.getElementById(%s+'-send');
if(!btn)return;
btn.addEventListener('click',function(){
var root=document.getElementById(%s);
var msg=%s;
root.querySelectorAll('[data-label]').forEach(function(input){
var label=input.dataset.label;
msg=msg.split('{'+label+'}').join(input.value);
msg=msg.split('{'+label.toLowerCase()+'}').join(input.value);
});
var num=%s.replace(/\D/g,'');
window.open('https://wa.me/'+num+'?text='+encodeURIComponent(msg),'_blank');
});
})();`, jsString(domID), jsString(domID), jsString(template), jsString(number))
}

// countdownScript ticks one timer block. On expiry the digit grid
// collapses into the "time's up" message and the interval stops.
func countdownScript(domID, targetDate string) string {
	return fmt.Sprintf(`(function(){
var root=document.getElementById(%s);
if(!root)return;
var target=Date.parse(%s);
if(isNaN(target))return;
var id=%s;
var cells={d:document.getElementById(id+'-d'),h:document.getElementById(id+'-h'),m:document.getElementById(id+'-m'),s:document.getElementById(id+'-s')};
function pad(n){return n<10?'0'+n:''+n;}
var timer;
function tick(){
var diff=target-Date.now();
if(diff<=0){
root.querySelector('.cd-grid').style.display='none';
root.querySelector('.cd-done').style.display='block';
if(timer)clearInterval(timer);
return;
}
var s=Math.floor(diff/1000);
cells.d.textContent=pad(Math.floor(s/86400));
cells.h.textContent=pad(Math.floor(s%%86400/3600));
cells.m.textContent=pad(Math.floor(s%%3600/60));
cells.s.textContent=pad(s%%60);
}
tick();
timer=setInterval(tick,1000);
})();`, jsString(domID), jsString(targetDate), jsString(domID))
}

// leadFormNextScript fills formsubmit.co's return-URL field with the
// page's own address at submit time, so the relay bounces the visitor
// back to the exported page.
func leadFormNextScript(domID string) string {
	return fmt.Sprintf(`(function(){
var f=document.getElementById(%s);
if(!f)return;
f.addEventListener('submit',function(){
var next=f.querySelector('input[name="_next"]');
if(next)next.value=window.location.href;
});
})();`, jsString(domID))
}
